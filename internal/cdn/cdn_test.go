package cdn

// Тесты разрешения CDN-ссылок (internal/cdn).
//
// Проверяем:
//   - пустая ссылка -> пустая строка;
//   - ссылка из стораджа с percent-encoded маркером -> канонический URL;
//   - ссылка с буквальным videos/ -> канонический URL, query отрезан;
//   - уже разрешённая ссылка возвращается без изменений;
//   - идемпотентность: Resolve(Resolve(ref)) == Resolve(ref);
//   - отсутствие маркера -> graceful fallback на исходную ссылку.

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const testHost = "cdn.gridrr.com"

func TestResolve_Empty(t *testing.T) {
	t.Parallel()

	r := New(testHost)
	require.Equal(t, "", r.Resolve(context.Background(), ""))
	require.Equal(t, "", r.Resolve(context.Background(), "   "))
}

func TestResolve_EncodedMarker(t *testing.T) {
	t.Parallel()

	r := New(testHost)
	ref := "https://firebasestorage.googleapis.com/v0/b/app.appspot.com/o/videos%2Fdemo%20site.mp4?alt=media&token=abc"

	require.Equal(t,
		"https://cdn.gridrr.com/videos/demo%20site.mp4",
		r.Resolve(context.Background(), ref),
	)
}

func TestResolve_LiteralMarker(t *testing.T) {
	t.Parallel()

	r := New(testHost)
	ref := "https://storage.example.com/bucket/videos/clip.mp4?sig=xyz"

	require.Equal(t,
		"https://cdn.gridrr.com/videos/clip.mp4",
		r.Resolve(context.Background(), ref),
	)
}

func TestResolve_AlreadyResolved(t *testing.T) {
	t.Parallel()

	r := New(testHost)
	ref := "https://cdn.gridrr.com/videos/clip.mp4"
	require.Equal(t, ref, r.Resolve(context.Background(), ref))
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	r := New(testHost)
	ctx := context.Background()
	ref := "https://storage.example.com/bucket/videos/clip.mp4"

	once := r.Resolve(ctx, ref)
	require.Equal(t, once, r.Resolve(ctx, once))
}

func TestResolve_NoMarkerFallsBack(t *testing.T) {
	t.Parallel()

	r := New(testHost)
	ref := "https://storage.example.com/bucket/images/pic.png"
	require.Equal(t, ref, r.Resolve(context.Background(), ref))
}
