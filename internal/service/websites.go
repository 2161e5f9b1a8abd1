package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pribylovaa/go-site-showcase/internal/cache"
	"github.com/pribylovaa/go-site-showcase/internal/models"
	"github.com/pribylovaa/go-site-showcase/internal/normalize"
	"github.com/pribylovaa/go-site-showcase/internal/pkg/log"
	"github.com/pribylovaa/go-site-showcase/internal/storage"
)

// Входные структуры сервисного слоя.

// ListWebsitesInput — параметры постраничной выдачи каталога.
// Пустой Sort трактуется как «свежие». Курсор действителен только для той
// же комбинации (Sort, Category, BuiltWith).
type ListWebsitesInput struct {
	Sort      models.Sort
	Category  string
	BuiltWith string
	PageSize  int32
	PageToken string
}

// ListWebsites — постраничная выдача каталога.
//
// Валидация:
//   - Sort: пусто -> latest; неизвестное значение -> ErrInvalidArgument;
//   - PageSize приводится к [Default, Max] (сервис не полагается на
//     дисциплину вызывающего).
//
// Поведение/ошибки:
//   - повторный вызов с теми же параметрами в пределах TTL кэша не ходит
//     в сторадж;
//   - ErrInvalidCursor — битый или чужой page_token;
//   - сбой стораджа НЕ пробрасывается: лента деградирует до пустой страницы
//     ({[], "", false}), результат не кэшируется.
func (s *Service) ListWebsites(ctx context.Context, in ListWebsitesInput) (*models.Page, error) {
	const op = "service/websites/ListWebsites"

	lg := log.From(ctx).With(
		"op", op,
		"sort", string(in.Sort),
		"category", in.Category,
		"built_with", in.BuiltWith,
	)

	if in.Sort == "" {
		in.Sort = models.SortLatest
	}

	if !in.Sort.Valid() {
		lg.Warn("invalid argument: unknown sort")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Category = strings.TrimSpace(in.Category)
	in.BuiltWith = strings.TrimSpace(in.BuiltWith)
	in.PageSize = s.clampLimit(in.PageSize)

	key := cache.Key{
		Op:        "list",
		Sort:      string(in.Sort),
		Category:  normalize.CanonicalTag(in.Category),
		BuiltWith: normalize.CanonicalTag(in.BuiltWith),
		Cursor:    strings.TrimSpace(in.PageToken),
		Limit:     in.PageSize,
	}

	if v, ok := s.cache.Get(key); ok {
		return v.(*models.Page), nil
	}

	page, err := s.storage.ListWebsites(ctx, models.ListParams{
		Sort:      in.Sort,
		Category:  in.Category,
		BuiltWith: in.BuiltWith,
		PageSize:  in.PageSize,
		PageToken: strings.TrimSpace(in.PageToken),
	})
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("invalid page token")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("storage error on ListWebsites", "err", err)
		return &models.Page{Items: []models.Website{}}, nil
	}

	if page.Items == nil {
		page.Items = []models.Website{}
	}

	s.resolveMedia(ctx, page.Items)
	s.cache.Set(key, page)

	return page, nil
}

// WebsiteByID — запись каталога по идентификатору.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — пустой id;
//   - ErrNotFound — записи нет (в отличие от ленты, сбой здесь не маскируется:
//     страница деталей обязана показать явное «не найдено»);
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) WebsiteByID(ctx context.Context, id string) (*models.Website, error) {
	const op = "service/websites/WebsiteByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.WebsiteByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("website not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on WebsiteByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	result.VideoURL = s.cdn.Resolve(ctx, result.VideoURL)

	return result, nil
}

// AdjacentWebsites — соседи записи в окне выдачи под заданной сортировкой
// (для навигации prev/next на странице деталей).
//
// Поведение:
//   - окно ограничено cfg.Limits.AdjacentWindow (точность/стоимость);
//   - Prev — более старый/менее популярный сосед, Next — более новый;
//   - запись вне окна или на границе -> соответствующий сосед nil;
//   - сбой выдачи не фатален: оба соседа nil, без ошибки.
func (s *Service) AdjacentWebsites(ctx context.Context, id string, sortBy models.Sort) (*models.Adjacent, error) {
	const op = "service/websites/AdjacentWebsites"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id, "sort", string(sortBy))

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	page, err := s.ListWebsites(ctx, ListWebsitesInput{
		Sort:     sortBy,
		PageSize: s.cfg.Limits.AdjacentWindow,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			return nil, err
		}

		lg.Error("list failed for adjacency window", "err", err)
		return &models.Adjacent{}, nil
	}

	adj := &models.Adjacent{}
	for i := range page.Items {
		if page.Items[i].ID != id {
			continue
		}

		if i > 0 {
			adj.Next = &page.Items[i-1]
		}

		if i < len(page.Items)-1 {
			adj.Prev = &page.Items[i+1]
		}

		break
	}

	return adj, nil
}

// IncrementViews — best-effort инкремент счётчика просмотров.
// Fire-and-forget: любые сбои логируются и глотаются — телеметрия просмотров
// никогда не блокирует и не валит отдачу страницы.
func (s *Service) IncrementViews(ctx context.Context, id string) {
	const op = "service/websites/IncrementViews"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return
	}

	if err := s.storage.IncrementViews(ctx, id); err != nil {
		lg.Warn("increment views failed", "err", err)
	}
}

// CategoryCounts — счётчики по каноническому словарю тегов.
//
// Поведение:
//   - считается по ограниченной выборке свежих записей
//     (cfg.Limits.CountSample), не по всему корпусу;
//   - сопоставление регистро- и пробело-независимое, отображаемое имя —
//     каноническое;
//   - возвращаются ВСЕ канонические теги, включая нулевые, в алфавитном
//     порядке;
//   - сбой стораджа -> пустой список без ошибки (как и лента);
//   - результат мемоизируется с тем же TTL.
func (s *Service) CategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	const op = "service/websites/CategoryCounts"

	lg := log.From(ctx).With("op", op)

	key := cache.Key{Op: "category_counts"}
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.CategoryCount), nil
	}

	page, err := s.storage.ListWebsites(ctx, models.ListParams{
		Sort:     models.SortLatest,
		PageSize: s.cfg.Limits.CountSample,
	})
	if err != nil {
		lg.Error("storage error on CategoryCounts", "err", err)
		return []models.CategoryCount{}, nil
	}

	counts := make(map[string]int, len(CanonicalCategories))
	display := make(map[string]string, len(CanonicalCategories))
	for _, name := range CanonicalCategories {
		canon := normalize.CanonicalTag(name)
		counts[canon] = 0
		display[canon] = name
	}

	for _, site := range page.Items {
		for _, tag := range site.Categories {
			canon := normalize.CanonicalTag(tag)
			if _, ok := counts[canon]; ok {
				counts[canon]++
			}
		}
	}

	result := make([]models.CategoryCount, 0, len(counts))
	for canon, count := range counts {
		result = append(result, models.CategoryCount{Name: display[canon], Count: count})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	s.cache.Set(key, result)

	return result, nil
}

// SitemapEntries — проекция id+updated_at всех записей для sitemap.
//
// Поведение/ошибки:
//   - ErrInternal — сбой стораджа (sitemap без данных бессмыслен,
//     деградации до пустого списка нет);
//   - результат мемоизируется с тем же TTL.
func (s *Service) SitemapEntries(ctx context.Context) ([]models.SitemapEntry, error) {
	const op = "service/websites/SitemapEntries"

	lg := log.From(ctx).With("op", op)

	key := cache.Key{Op: "sitemap"}
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.SitemapEntry), nil
	}

	entries, err := s.storage.SitemapEntries(ctx)
	if err != nil {
		lg.Error("storage error on SitemapEntries", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if entries == nil {
		entries = []models.SitemapEntry{}
	}

	s.cache.Set(key, entries)

	return entries, nil
}

// clampLimit приводит запрошенный размер страницы к [Default, Max].
// Дублирует защиту стораджа, чтобы идентичность ключа кэша считалась по
// эффективному, а не по запрошенному размеру.
func (s *Service) clampLimit(pageSize int32) int32 {
	if pageSize <= 0 {
		pageSize = s.cfg.Limits.Default
	}

	if pageSize > s.cfg.Limits.Max {
		pageSize = s.cfg.Limits.Max
	}

	return pageSize
}

// resolveMedia разрешает хранимые ссылки на видео в публичные CDN-URL.
func (s *Service) resolveMedia(ctx context.Context, items []models.Website) {
	for i := range items {
		items[i].VideoURL = s.cdn.Resolve(ctx, items[i].VideoURL)
	}
}
