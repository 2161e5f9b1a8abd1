package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-site-showcase/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token (в т.ч. токен от другой
	// комбинации сортировки/фильтров).
	ErrInvalidCursor = errors.New("invalid cursor")
)

// Storage описывает операции чтения каталога и единственную мутацию —
// инкремент счётчика просмотров.
type Storage interface {
	// ListWebsites возвращает страницу каталога под заданной сортировкой
	// и фильтрами. Сортировка: ключ DESC, _id DESC (стабильный tie-break).
	// Выдача нормализована: BuiltWith/Categories — всегда списки,
	// UploadedAt — UTC. VideoURL отдаётся сырым (разрешает сервисный слой).
	// При некорректном page_token — ErrInvalidCursor.
	ListWebsites(ctx context.Context, p models.ListParams) (*models.Page, error)

	// WebsiteByID возвращает запись по её строковому идентификатору.
	// Если запись не найдена (включая неверный формат id) — ErrNotFound.
	WebsiteByID(ctx context.Context, id string) (*models.Website, error)

	// IncrementViews атомарно увеличивает счётчик просмотров на 1 и
	// обновляет last_viewed_at. Если запись не найдена — ErrNotFound.
	IncrementViews(ctx context.Context, id string) error

	// SitemapEntries возвращает проекцию id+updated_at всех записей
	// в порядке uploaded_at DESC (для генерации sitemap).
	SitemapEntries(ctx context.Context) ([]models.SitemapEntry, error)

	// Close закрывает соединения/ресурсы хранилища.
	Close(ctx context.Context) error
}
