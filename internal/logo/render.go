package logo

import (
	"context"
	"fmt"
	"image"

	"github.com/fatih/color"
	"github.com/huangsam/standings/internal/contract"
)

const swatch = "████"

// Renderer turns logo URLs into table cells.
type Renderer struct {
	fetcher   contract.LogoFetcher
	enabled   bool
	useColors bool
	maxWidth  int
}

// NewRenderer creates a Renderer. When enabled is false no request is made and
// the cell shows the URL truncated to maxWidth.
func NewRenderer(fetcher contract.LogoFetcher, enabled, useColors bool, maxWidth int) *Renderer {
	return &Renderer{fetcher: fetcher, enabled: enabled, useColors: useColors, maxWidth: maxWidth}
}

// NewRendererFromConfig creates a Renderer backed by an HTTP Fetcher.
func NewRendererFromConfig(cfg *contract.Config, maxWidth int) *Renderer {
	return NewRenderer(NewFetcher(cfg.LogoTimeout, cfg.LogoSize), cfg.Logos, cfg.UseColors, maxWidth)
}

// Cell returns the display text for one logo. Any fetch or decode failure
// yields contract.LogoPlaceholder.
func (r *Renderer) Cell(ctx context.Context, url string) string {
	if !r.enabled || r.fetcher == nil {
		return contract.TruncateText(url, r.maxWidth)
	}
	img, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return contract.LogoPlaceholder
	}
	return Swatch(img, r.useColors)
}

// Swatch renders the average color of img, as colored blocks or as #RRGGBB.
func Swatch(img image.Image, useColors bool) string {
	red, green, blue := AverageColor(img)
	if !useColors {
		return HexColor(red, green, blue)
	}
	return color.RGB(int(red), int(green), int(blue)).Sprint(swatch)
}

// HexColor formats an 8-bit color triple as #RRGGBB.
func HexColor(red, green, blue uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", red, green, blue)
}

// AverageColor returns the mean 8-bit color of img weighted by alpha.
// Transparent pixels do not contribute; a fully transparent image is black.
func AverageColor(img image.Image) (red, green, blue uint8) {
	b := img.Bounds()
	var rs, gs, bs, as uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// RGBA values are alpha-premultiplied
			r, g, bl, a := img.At(x, y).RGBA()
			rs += uint64(r)
			gs += uint64(g)
			bs += uint64(bl)
			as += uint64(a)
		}
	}
	if as == 0 {
		return 0, 0, 0
	}
	unmul := func(sum uint64) uint8 {
		return uint8((sum * 0xffff / as) >> 8)
	}
	return unmul(rs), unmul(gs), unmul(bs)
}
