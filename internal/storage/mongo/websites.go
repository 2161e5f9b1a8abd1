package mongo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-site-showcase/internal/config"
	"github.com/pribylovaa/go-site-showcase/internal/models"
	"github.com/pribylovaa/go-site-showcase/internal/normalize"
	"github.com/pribylovaa/go-site-showcase/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// encodeCursor кодирует идентичность страницы в непрозрачный токен:
// (sort, category, built_with, значение ключа сортировки, _id).
// Токен привязан к комбинации сортировки/фильтров — чужой токен
// отвергается на декодировании.
func encodeCursor(p models.ListParams, key int64, id primitive.ObjectID) string {
	raw := fmt.Sprintf("%s|%s|%s|%d|%s",
		p.Sort,
		normalize.CanonicalTag(p.Category),
		normalize.CanonicalTag(p.BuiltWith),
		key,
		id.Hex(),
	)

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor декодирует токен и проверяет, что он выпущен для той же
// комбинации (sort, category, built_with).
func decodeCursor(token string, p models.ListParams) (int64, primitive.ObjectID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return 0, primitive.NilObjectID, err
	}

	parts := strings.SplitN(string(res), "|", 5)
	if len(parts) != 5 {
		return 0, primitive.NilObjectID, fmt.Errorf("bad parts")
	}

	if parts[0] != string(p.Sort) ||
		parts[1] != normalize.CanonicalTag(p.Category) ||
		parts[2] != normalize.CanonicalTag(p.BuiltWith) {
		return 0, primitive.NilObjectID, fmt.Errorf("cursor scope mismatch")
	}

	key, err := parseInt64(parts[3])
	if err != nil {
		return 0, primitive.NilObjectID, err
	}

	oid, err := primitive.ObjectIDFromHex(parts[4])
	if err != nil {
		return 0, primitive.NilObjectID, err
	}

	return key, oid, nil
}

// parseInt64 — локальная маленькая обёртка без импорта strconv везде.
func parseInt64(s string) (int64, error) {
	var x int64
	_, err := fmt.Sscan(s, &x)

	return x, err
}

// limitOrDefault приводит запрошенный размер страницы к [Default, Max].
func limitOrDefault(cfg *config.Config, pageSize int32) int64 {
	lim := pageSize
	if lim <= 0 {
		lim = cfg.Limits.Default
	}

	if lim > cfg.Limits.Max {
		lim = cfg.Limits.Max
	}

	return int64(lim)
}

// sortField возвращает ключ сортировки документа под заданный порядок.
func sortField(s models.Sort) string {
	if s == models.SortPopular {
		return "views"
	}

	return "uploaded_at"
}

// sortKeyValue — значение ключа сортировки записи для курсора.
func sortKeyValue(s models.Sort, w models.Website) int64 {
	if s == models.SortPopular {
		return w.Views
	}

	return w.UploadedAt.UnixNano()
}

// tagFilter — регистронезависимое точное совпадение тега.
// Для массива Mongo сопоставляет элементы, для голой строки — само значение,
// поэтому один и тот же фильтр покрывает обе хранимые формы built_with.
func tagFilter(field, value string) bson.E {
	pattern := "^" + regexQuote(strings.TrimSpace(value)) + "$"

	return bson.E{Key: field, Value: primitive.Regex{Pattern: pattern, Options: "i"}}
}

// regexQuote экранирует спецсимволы PCRE в пользовательском значении тега.
func regexQuote(s string) string {
	const special = `\.+*?()|[]{}^$`

	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(special, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}

// ListWebsites возвращает страницу каталога.
// Сортировка: ключ DESC, _id DESC; фильтры категории/фреймворка применяются
// на стороне стораджа, чтобы страницы оставались полными.
// Запрашивается limit+1 документ: лишний детектирует продолжение, курсор
// чеканится по последней ВОЗВРАЩЁННОЙ записи (keyset-продолжение строго
// «меньше» — каждая запись попадает в обход ровно один раз).
// При некорректном page_token — storage.ErrInvalidCursor.
func (m *Mongo) ListWebsites(ctx context.Context, p models.ListParams) (*models.Page, error) {
	const op = "storage/mongo/ListWebsites"

	limit := limitOrDefault(m.cfg, p.PageSize)
	field := sortField(p.Sort)

	filter := bson.D{}
	if strings.TrimSpace(p.Category) != "" {
		filter = append(filter, tagFilter("categories", p.Category))
	}

	if strings.TrimSpace(p.BuiltWith) != "" {
		filter = append(filter, tagFilter("built_with", p.BuiltWith))
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: field, Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit + 1)

	// Курсор "меньше" для DESC сортировки.
	if strings.TrimSpace(p.PageToken) != "" {
		key, oid, decErr := decodeCursor(p.PageToken, p)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		keyValue := cursorKeyBSON(p.Sort, key)
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: field, Value: bson.D{{Key: "$lt", Value: keyValue}}}},
			bson.D{
				{Key: field, Value: keyValue},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: oid}}},
			},
		}})
	}

	cur, err := m.websites.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Website
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, decodeWebsite(raw))
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	hasMore := int64(len(items)) > limit
	if hasMore {
		items = items[:limit]
	}

	var next string
	if hasMore {
		last := items[len(items)-1]
		oid, _ := primitive.ObjectIDFromHex(last.ID)
		next = encodeCursor(p, sortKeyValue(p.Sort, last), oid)
	}

	return &models.Page{
		Items:         items,
		NextPageToken: next,
		HasMore:       hasMore,
	}, nil
}

// cursorKeyBSON восстанавливает BSON-значение ключа сортировки из курсора:
// для «свежих» — Date из наносекунд, для «популярных» — целое число.
func cursorKeyBSON(s models.Sort, key int64) any {
	if s == models.SortPopular {
		return key
	}

	return primitive.NewDateTimeFromTime(time.Unix(0, key).UTC())
}

// WebsiteByID возвращает запись по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
// Некорректный формат id трактуется как «нет такой записи».
func (m *Mongo) WebsiteByID(ctx context.Context, id string) (*models.Website, error) {
	const op = "storage/mongo/WebsiteByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var raw bson.M
	if err := m.websites.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&raw); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := decodeWebsite(raw)
	return &out, nil
}

// IncrementViews атомарно добавляет 1 к счётчику просмотров и обновляет
// last_viewed_at. Конкурентные инкременты складываются на стороне стораджа,
// защита от lost update не требуется.
func (m *Mongo) IncrementViews(ctx context.Context, id string) error {
	const op = "storage/mongo/IncrementViews"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.websites.UpdateByID(ctx, oid, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "views", Value: int64(1)}}},
		{Key: "$set", Value: bson.D{{Key: "last_viewed_at", Value: time.Now().UTC()}}},
	})

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SitemapEntries возвращает id+updated_at всех записей (uploaded_at DESC).
func (m *Mongo) SitemapEntries(ctx context.Context) ([]models.SitemapEntry, error) {
	const op = "storage/mongo/SitemapEntries"

	findOpts := options.Find().
		SetSort(bson.D{{Key: "uploaded_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetProjection(bson.D{{Key: "_id", Value: 1}, {Key: "uploaded_at", Value: 1}})

	cur, err := m.websites.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.SitemapEntry
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		entry := models.SitemapEntry{UpdatedAt: normalize.Timestamp(raw["uploaded_at"])}
		if oid, ok := raw["_id"].(primitive.ObjectID); ok {
			entry.ID = oid.Hex()
		}

		out = append(out, entry)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return out, nil
}

// decodeWebsite собирает доменную модель из сырого документа.
// Здесь единственная точка нормализации хранимых форм: скаляр-или-список
// для built_with, разнотипные временные поля, дефолты для отсутствующих
// name/url/views.
func decodeWebsite(raw bson.M) models.Website {
	w := models.Website{
		Name:       "Untitled",
		URL:        "#",
		BuiltWith:  normalize.Tags(raw["built_with"]),
		Categories: normalize.Tags(raw["categories"]),
		UploadedAt: normalize.Timestamp(raw["uploaded_at"]),
	}

	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		w.ID = oid.Hex()
	}

	if name, ok := raw["name"].(string); ok && strings.TrimSpace(name) != "" {
		w.Name = name
	}

	if u, ok := raw["url"].(string); ok && strings.TrimSpace(u) != "" {
		w.URL = u
	}

	if v, ok := raw["video_url"].(string); ok {
		w.VideoURL = v
	}

	if v, ok := raw["last_viewed_at"]; ok && v != nil {
		w.LastViewedAt = normalize.Timestamp(v)
	}

	w.Views = asInt64(raw["views"])

	if links, ok := raw["social_links"].(bson.M); ok {
		w.SocialLinks = make(map[string]string, len(links))
		for k, v := range links {
			if s, ok := v.(string); ok {
				w.SocialLinks[k] = s
			}
		}
	}

	return w
}

// asInt64 сводит числовые типы BSON к int64; всё прочее — 0.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
