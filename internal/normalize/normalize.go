// Package normalize приводит store-native представления полей MongoDB
// к стабильной read-модели: время — в UTC/RFC3339, теги — всегда списки.
// Нормализация выполняется один раз на границе чтения; дальше по коду
// никто не ветвится на сырую форму документа.
package normalize

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timestamp приводит произвольное store-native значение времени к time.Time (UTC).
// Принимает time.Time, primitive.DateTime, primitive.Timestamp и строки
// RFC3339/RFC3339Nano. Отсутствующее или нераспознанное значение — текущее
// время (запись без даты считается «только что загруженной»).
func Timestamp(value any) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v.UTC()
	case *time.Time:
		if v != nil {
			return v.UTC()
		}
	case primitive.DateTime:
		return v.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(v.T), 0).UTC()
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t.UTC()
		}
	}

	return time.Now().UTC()
}

// ISOTimestamp — Timestamp, сериализованный в RFC3339 (формат выдачи наружу).
func ISOTimestamp(value any) string {
	return Timestamp(value).Format(time.RFC3339Nano)
}

// Document рекурсивно обходит вложенную структуру документа (карты, массивы,
// скаляры) и заменяет каждый временной лист строкой RFC3339. Остальные
// значения не трогает. Вход не мутируется: контейнеры пересобираются.
func Document(value any) any {
	switch v := value.(type) {
	case primitive.DateTime, primitive.Timestamp, time.Time:
		return ISOTimestamp(v)
	case bson.M:
		out := make(bson.M, len(v))
		for k, item := range v {
			out[k] = Document(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Document(item)
		}
		return out
	case bson.D:
		out := make(bson.D, 0, len(v))
		for _, e := range v {
			out = append(out, bson.E{Key: e.Key, Value: Document(e.Value)})
		}
		return out
	case bson.A:
		out := make(bson.A, 0, len(v))
		for _, item := range v {
			out = append(out, Document(item))
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, Document(item))
		}
		return out
	default:
		return value
	}
}

// Tags приводит поле «скаляр или список» к списку строк.
// Голая строка становится одноэлементным списком, пустые/нестроковые
// элементы отбрасываются. Результат никогда не nil — на границе потребителя
// всегда список.
func Tags(value any) []string {
	out := []string{}

	appendTag := func(v any) {
		s, ok := v.(string)
		if !ok {
			return
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	switch v := value.(type) {
	case string:
		appendTag(v)
	case []string:
		for _, item := range v {
			appendTag(item)
		}
	case bson.A:
		for _, item := range v {
			appendTag(item)
		}
	case []any:
		for _, item := range v {
			appendTag(item)
		}
	}

	return out
}

// CanonicalTag — представление тега для сравнения: trim + lower-case.
// Используется только для сопоставления; отображаемый регистр всегда
// хранится отдельно.
func CanonicalTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
