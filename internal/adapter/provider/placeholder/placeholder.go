package placeholder

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/draw"

	"github.com/heartmarshall/florarium-backend/internal/provider"
)

const (
	defaultSize          = 512
	defaultThumbnailSide = 200
	thumbnailQuality     = 70
)

// gradientStops are the soft lilac-to-periwinkle colours of the fallback image.
var gradientStops = [3][3]float64{
	{0.9, 0.7, 0.9},
	{0.7, 0.5, 0.8},
	{0.5, 0.6, 0.9},
}

// Renderer draws the local fallback image and widget thumbnails.
type Renderer struct {
	size          int
	thumbnailSide int
}

// NewRenderer creates a Renderer. Non-positive sizes use defaults.
func NewRenderer(size, thumbnailSide int) *Renderer {
	if size <= 0 {
		size = defaultSize
	}
	if thumbnailSide <= 0 {
		thumbnailSide = defaultThumbnailSide
	}
	return &Renderer{size: size, thumbnailSide: thumbnailSide}
}

// GenerateImage renders the radial gradient placeholder as PNG.
// It satisfies the same contract as the remote image providers.
func (r *Renderer) GenerateImage(_ context.Context, req provider.ImageRequest) (provider.ImageResult, error) {
	data, err := r.Render()
	if err != nil {
		return provider.ImageResult{}, err
	}
	return provider.ImageResult{Data: data, Prompt: provider.ImagePrompt(req)}, nil
}

// Render draws a radial gradient between (0.3w, 0.3h) and (0.7w, 0.7h)
// with radius 0.8w.
func (r *Renderer) Render() ([]byte, error) {
	n := r.size
	img := image.NewRGBA(image.Rect(0, 0, n, n))

	w := float64(n)
	sx, sy := 0.3*w, 0.3*w
	ex, ey := 0.7*w, 0.7*w
	radius := 0.8 * w

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			// Project onto the axis between the two centres, then add radial falloff.
			along := ((px-sx)*(ex-sx) + (py-sy)*(ey-sy)) / ((ex-sx)*(ex-sx) + (ey-sy)*(ey-sy))
			dist := math.Hypot(px-sx, py-sy) / radius
			t := clamp01(0.5*clamp01(along) + 0.5*clamp01(dist))
			img.Set(x, y, gradientAt(t))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("placeholder: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail decodes a PNG or JPEG image, scales its longer side down to the
// thumbnail size and re-encodes it as JPEG.
func (r *Renderer) Thumbnail(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("placeholder: decode image: %w", err)
	}

	b := src.Bounds()
	tw, th := fit(b.Dx(), b.Dy(), r.thumbnailSide)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("placeholder: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func fit(w, h, side int) (int, int) {
	if w <= side && h <= side {
		return w, h
	}
	if w >= h {
		return side, max(1, h*side/w)
	}
	return max(1, w*side/h), side
}

func gradientAt(t float64) color.RGBA {
	var a, b [3]float64
	var local float64
	if t < 0.5 {
		a, b, local = gradientStops[0], gradientStops[1], t/0.5
	} else {
		a, b, local = gradientStops[1], gradientStops[2], (t-0.5)/0.5
	}
	ch := func(i int) uint8 {
		return uint8(math.Round((a[i] + (b[i]-a[i])*local) * 255))
	}
	return color.RGBA{R: ch(0), G: ch(1), B: ch(2), A: 255}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
