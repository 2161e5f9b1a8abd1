// Package models содержит доменные сущности showcase-сервиса.
package models

import "time"

// Sort — порядок выдачи каталога.
type Sort string

const (
	// SortLatest — сначала свежие (uploaded_at DESC).
	SortLatest Sort = "latest"
	// SortPopular — сначала популярные (views DESC).
	SortPopular Sort = "popular"
)

// Valid сообщает, известен ли порядок сортировки.
func (s Sort) Valid() bool {
	return s == SortLatest || s == SortPopular
}

// Website — внутренняя доменная модель записи каталога (MongoDB).
// Важно:
//   - ID — ObjectID MongoDB. Наружу/вовнутрь конвертируется в string.
//   - VideoURL — уже разрешённый публичный CDN-URL; сырой referrer из
//     хранилища наружу не отдаётся.
//   - BuiltWith/Categories — после нормализации всегда списки (возможно
//     пустые), даже если в документе лежит голая строка.
//   - UploadedAt — всегда UTC; наружу конвертируется в RFC3339.
//   - Views — счётчик просмотров, по умолчанию 0; best-effort инкремент.
type Website struct {
	ID           string
	Name         string
	VideoURL     string
	URL          string
	BuiltWith    []string
	Categories   []string
	SocialLinks  map[string]string
	UploadedAt   time.Time
	LastViewedAt time.Time
	Views        int64
}

// ListParams — параметры постраничной выдачи каталога.
// Курсор действителен только для той же комбинации (Sort, Category, BuiltWith).
type ListParams struct {
	Sort      Sort
	Category  string
	BuiltWith string
	PageSize  int32
	PageToken string
}

// Page — результат постраничной выдачи.
// NextPageToken пуст, когда продолжения нет; HasMore дублирует этот факт
// явным флагом для фронта.
type Page struct {
	Items         []Website
	NextPageToken string
	HasMore       bool
}

// Adjacent — соседи записи в рамках одного порядка сортировки.
// Prev — более старый/менее популярный сосед, Next — более новый/популярный.
type Adjacent struct {
	Prev *Website
	Next *Website
}

// CategoryCount — счётчик по одному каноническому тегу.
// Name — каноническое отображаемое имя (регистр сохранён).
type CategoryCount struct {
	Name  string
	Count int
}

// SitemapEntry — минимальная проекция записи для генерации sitemap.
type SitemapEntry struct {
	ID        string
	UpdatedAt time.Time
}
