package asn1pkix

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	cat := testCatalog()

	cfg := newCodecConfig([]Option{With(cat, 7, l, "ignored", nil)})
	if cfg.lookup == nil || cfg.maxDepth != 7 || cfg.logger != l {
		t.Fatalf("%s failed [dispatch]: %#v", t.Name(), cfg)
	}

	cfg = newCodecConfig([]Option{With(WithMaxDepth(3)), nil})
	if cfg.maxDepth != 3 || cfg.logger != Logger() {
		t.Fatalf("%s failed [nested option]: %#v", t.Name(), cfg)
	}

	ctx := ContextWithLogger(context.Background(), l)
	if cfg = newCodecConfig([]Option{With(ctx)}); cfg.logger != l {
		t.Fatalf("%s failed [context]", t.Name())
	}
}

func TestWithMaxDepth(t *testing.T) {
	for _, tc := range []struct {
		n, want int
	}{
		{0, DefaultMaxDepth},
		{-5, DefaultMaxDepth},
		{1, 1},
		{500, 500},
	} {
		if got := newCodecConfig([]Option{WithMaxDepth(tc.n)}).maxDepth; got != tc.want {
			t.Fatalf("%s failed [%d]: want %d, got %d", t.Name(), tc.n, tc.want, got)
		}
	}
}
