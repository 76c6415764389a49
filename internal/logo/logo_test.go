package logo

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/huangsam/standings/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPNG(t *testing.T, c color.Color, size int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newLogoServer(t *testing.T) *httptest.Server {
	t.Helper()
	red := solidPNG(t, color.RGBA{R: 255, A: 255}, 120)

	mux := http.NewServeMux()
	mux.HandleFunc("/red.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(red)
	})
	mux.HandleFunc("/garbage.png", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("definitely not an image"))
	})
	mux.HandleFunc("/slow.png", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
			_, _ = w.Write(red)
		case <-r.Context().Done():
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchResizesToSquare(t *testing.T) {
	srv := newLogoServer(t)
	f := NewFetcher(time.Second, 50)

	img, err := f.Fetch(context.Background(), srv.URL+"/red.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())

	r, g, b := AverageColor(img)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(0), b)
}

func TestFetchErrors(t *testing.T) {
	srv := newLogoServer(t)

	tests := []struct {
		name    string
		path    string
		fetcher *Fetcher
	}{
		{"not found", "/missing.png", NewFetcher(time.Second, 50)},
		{"undecodable body", "/garbage.png", NewFetcher(time.Second, 50)},
		{"timeout", "/slow.png", NewFetcher(50*time.Millisecond, 50)},
		{"too large", "/red.png", &Fetcher{Client: http.DefaultClient, Timeout: time.Second, Size: 50, MaxBytes: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fetcher.Fetch(context.Background(), srv.URL+tt.path)
			assert.Error(t, err)
		})
	}
}

func TestFetchTooLargeSentinel(t *testing.T) {
	srv := newLogoServer(t)
	f := &Fetcher{Client: http.DefaultClient, Timeout: time.Second, Size: 50, MaxBytes: 16}

	_, err := f.Fetch(context.Background(), srv.URL+"/red.png")
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestRendererCell(t *testing.T) {
	srv := newLogoServer(t)
	fetcher := NewFetcher(50*time.Millisecond, 50)

	t.Run("swatch as hex when colors are off", func(t *testing.T) {
		r := NewRenderer(fetcher, true, false, 40)
		assert.Equal(t, "#FF0000", r.Cell(context.Background(), srv.URL+"/red.png"))
	})

	t.Run("placeholder on failures", func(t *testing.T) {
		r := NewRenderer(fetcher, true, false, 40)
		for _, path := range []string{"/missing.png", "/garbage.png", "/slow.png"} {
			assert.Equal(t, contract.LogoPlaceholder, r.Cell(context.Background(), srv.URL+path), path)
		}
	})

	t.Run("disabled shows truncated url", func(t *testing.T) {
		r := NewRenderer(fetcher, false, false, 12)
		assert.Equal(t, "https://m...", r.Cell(context.Background(), "https://media.example.com/42.png"))
	})

	t.Run("colored swatch", func(t *testing.T) {
		r := NewRenderer(fetcher, true, true, 40)
		assert.Contains(t, r.Cell(context.Background(), srv.URL+"/red.png"), swatch)
	})
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#0A0B0C", HexColor(10, 11, 12))
}

func TestAverageColorIgnoresTransparentPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := range 10 {
		for x := range 5 {
			img.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}

	r, g, b := AverageColor(img)
	assert.Equal(t, uint8(0), r)
	assert.Equal(t, uint8(255), g)
	assert.Equal(t, uint8(0), b)
	assert.Equal(t, "#00FF00", Swatch(img, false))
}

func TestAverageColorFullyTransparent(t *testing.T) {
	r, g, b := AverageColor(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestAverageColorEmpty(t *testing.T) {
	r, g, b := AverageColor(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}
