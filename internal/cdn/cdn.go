// Package cdn разрешает хранимую ссылку на видео-ассет в публичный URL
// CDN-хоста. Разрешение — чистое преобразование строки, без сетевых вызовов
// и без аутентификации (хост отдаёт статические ассеты публично).
package cdn

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pribylovaa/go-site-showcase/internal/pkg/log"
)

// assetPath находит имя ассета после маркера videos/ — как в буквальной,
// так и в percent-encoded форме (videos%2F), обрезая query-часть.
var assetPath = regexp.MustCompile(`videos(?:%2F|/)([^?]+)`)

// Resolver собирает публичные URL для заданного delivery-хоста.
type Resolver struct {
	host string
}

// New создаёт Resolver для хоста вида "cdn.example.com".
func New(host string) *Resolver {
	return &Resolver{host: strings.TrimSpace(host)}
}

// Resolve превращает хранимую ссылку в канонический URL доставки.
//
// Поведение:
//   - пустая ссылка -> пустая строка;
//   - ссылка уже указывает на delivery-хост -> возвращается как есть
//     (повторное разрешение — no-op);
//   - иначе из ссылки извлекается имя ассета после маркера videos/
//     (поддерживаются обе формы слэша), перекодируется и подставляется
//     в https://<host>/videos/<имя>;
//   - маркер не найден -> warning в лог и исходная ссылка без изменений.
//     Разрешение никогда не возвращает ошибку: битая ссылка на медиа не
//     должна ломать выдачу страницы.
func (r *Resolver) Resolve(ctx context.Context, ref string) string {
	if strings.TrimSpace(ref) == "" {
		return ""
	}

	if strings.Contains(ref, r.host) {
		return ref
	}

	decoded, err := url.QueryUnescape(ref)
	if err != nil {
		// Некорректный percent-encoding — работаем с тем, что есть.
		decoded = ref
	}

	m := assetPath.FindStringSubmatch(decoded)
	if m == nil {
		log.From(ctx).Warn("cdn: asset marker not found, falling back to original ref",
			"ref", ref,
		)
		return ref
	}

	return fmt.Sprintf("https://%s/videos/%s", r.host, url.PathEscape(m[1]))
}
