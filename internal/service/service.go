// service содержит бизнес-логику showcase-сервиса: выдача каталога,
// мемоизация, разрешение CDN-ссылок и best-effort телеметрия просмотров.
package service

import (
	"errors"

	"github.com/pribylovaa/go-site-showcase/internal/cache"
	"github.com/pribylovaa/go-site-showcase/internal/cdn"
	"github.com/pribylovaa/go-site-showcase/internal/config"
	"github.com/pribylovaa/go-site-showcase/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal — внутренняя ошибка (стораж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — описывает бизнес-логику showcase-service.
// Кэш и резолвер внедряются конструктором: никакого состояния уровня пакета.
type Service struct {
	storage storage.Storage
	cache   cache.Cache
	cdn     *cdn.Resolver
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(st storage.Storage, c cache.Cache, resolver *cdn.Resolver, cfg config.Config) *Service {
	return &Service{
		storage: st,
		cache:   c,
		cdn:     resolver,
		cfg:     cfg,
	}
}
