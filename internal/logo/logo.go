// Package logo fetches team logos and renders them as table cells.
package logo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"time"

	"github.com/huangsam/standings/internal/contract"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

// ErrTooLarge is returned when a logo body exceeds the byte cap.
var ErrTooLarge = errors.New("logo exceeds size limit")

// Fetcher downloads logos over HTTP and resizes them to a square bitmap.
type Fetcher struct {
	Client   *http.Client
	Timeout  time.Duration // Deadline of one fetch including the body read
	Size     int           // Edge length of the resized bitmap
	MaxBytes int64         // Largest accepted body
}

var _ contract.LogoFetcher = &Fetcher{} // Compile-time check

// NewFetcher creates a Fetcher with the given deadline and bitmap size.
func NewFetcher(timeout time.Duration, size int) *Fetcher {
	return &Fetcher{
		Client:   http.DefaultClient,
		Timeout:  timeout,
		Size:     size,
		MaxBytes: contract.MaxLogoBytes,
	}
}

// Fetch downloads and decodes the image at url and returns it resized to Size x Size.
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.MaxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.MaxBytes {
		return nil, ErrTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return Resize(src, f.Size), nil
}

// Resize scales src to a size x size RGBA bitmap.
func Resize(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
