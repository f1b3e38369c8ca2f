package filter

import (
	"fmt"
	"image"
	"math"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traPtitech/thumbparam/service/thumbnail/geometry"
)

var red = color.NRGBA{R: 255, A: 255}

func solid(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

func TestPipeline_Apply(t *testing.T) {
	t.Parallel()

	p := Pipeline{Rotation{Angle: 90}, Canvas{Width: 10, Height: 10}}
	out := p.Apply(solid(20, 10, red))
	assert.Equal(t, image.Pt(10, 10), out.Bounds().Size())
	assert.Equal(t, "pipeline(2)", p.String())

	img := solid(3, 3, red)
	assert.Same(t, img, Pipeline{}.Apply(img))
}

func TestRotation_Apply(t *testing.T) {
	t.Parallel()

	img := solid(20, 10, red)
	img.SetNRGBA(0, 0, color.NRGBA{B: 255, A: 255})

	out := Rotation{Angle: 90}.Apply(img)
	assert.Equal(t, image.Pt(10, 20), out.Bounds().Size())
	// 時計回りに90度回すと左上の画素は右上に移動する
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, out.At(9, 0))
}

func TestFlip_Apply(t *testing.T) {
	t.Parallel()

	img := solid(4, 2, red)
	img.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})

	assert.Equal(t, color.NRGBA{G: 255, A: 255}, FlipHorizontal.Apply(img).At(3, 0))
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, FlipVertical.Apply(img).At(0, 1))
}

func TestGrayscale_Apply(t *testing.T) {
	t.Parallel()

	c := Grayscale{}.Apply(solid(2, 2, red)).At(0, 0).(color.NRGBA)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)
}

func TestTransparency(t *testing.T) {
	t.Parallel()

	t.Run("apply", func(t *testing.T) {
		t.Parallel()
		f, err := NewTransparency(0.5)
		require.NoError(t, err)
		c := f.Apply(solid(2, 2, red)).At(1, 1).(color.NRGBA)
		assert.EqualValues(t, 128, c.A)
	})
	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		_, err := NewTransparency(1.2)
		assert.ErrorIs(t, err, ErrInvalidAlpha)
	})
}

func TestWatermark(t *testing.T) {
	t.Parallel()

	t.Run("apply", func(t *testing.T) {
		t.Parallel()
		mark := solid(2, 2, color.NRGBA{B: 255, A: 255})
		w, err := NewWatermark(geometry.BottomRight, mark, 1, geometry.Insets{})
		require.NoError(t, err)

		out := w.Apply(solid(10, 10, red))
		assert.Equal(t, color.NRGBA{B: 255, A: 255}, out.At(9, 9))
		assert.Equal(t, red, out.At(0, 0))
	})
	t.Run("nil image", func(t *testing.T) {
		t.Parallel()
		_, err := NewWatermark(nil, nil, 1, geometry.Insets{})
		assert.ErrorIs(t, err, ErrNilImage)
	})
	t.Run("invalid opacity", func(t *testing.T) {
		t.Parallel()
		_, err := NewWatermark(nil, solid(1, 1, red), -1, geometry.Insets{})
		assert.ErrorIs(t, err, ErrInvalidAlpha)
	})
}

func TestCanvas_Apply(t *testing.T) {
	t.Parallel()

	out := Canvas{Width: 6, Height: 6, Position: geometry.TopLeft, Fill: color.White}.Apply(solid(2, 2, red))
	assert.Equal(t, image.Pt(6, 6), out.Bounds().Size())
	assert.Equal(t, red, out.At(1, 1))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.At(5, 5))
}

func TestFilters_NonFiniteValues(t *testing.T) {
	t.Parallel()

	tests := []Filter{
		Rotation{Angle: math.NaN()},
		Rotation{Angle: math.Inf(1)},
		Blur{Sigma: math.NaN()},
		Blur{Sigma: math.Inf(1)},
		Blur{Sigma: 1e300},
		Sharpen{Sigma: math.Inf(1)},
		Sharpen{Sigma: math.NaN()},
	}
	for _, f := range tests {
		t.Run(f.(fmt.Stringer).String(), func(t *testing.T) {
			t.Parallel()
			var out image.Image
			require.NotPanics(t, func() { out = f.Apply(solid(4, 3, red)) })
			assert.Equal(t, image.Pt(4, 3), out.Bounds().Size())
		})
	}
}

func TestColorize_Apply(t *testing.T) {
	t.Parallel()

	out := Colorize{Color: color.White, Opacity: 1}.Apply(solid(2, 2, red))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.At(0, 0))

	var nilColor image.Image
	require.NotPanics(t, func() { nilColor = Colorize{Opacity: 0.5}.Apply(solid(2, 2, red)) })
	assert.Equal(t, red, nilColor.At(1, 1))
}

func TestParse(t *testing.T) {
	t.Parallel()

	ok := []struct {
		spec string
		want Filter
	}{
		{"grayscale", Grayscale{}},
		{"flip:h", FlipHorizontal},
		{"flip:vertical", FlipVertical},
		{"rotate:90", Rotation{Angle: 90}},
		{" blur:1.5 ", Blur{Sigma: 1.5}},
		{"sharpen:0.5", Sharpen{Sigma: 0.5}},
		{"transparency:0.25", Transparency{alpha: 0.25}},
	}
	for _, tt := range ok {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()
			f, err := Parse(tt.spec)
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want, f)
			}
		})
	}

	ng := []string{
		"", "unknown", "flip:x", "rotate", "blur:abc", "transparency:2",
		"blur:NaN", "sharpen:Inf", "rotate:NaN", "rotate:-Inf", "transparency:NaN",
	}
	for _, spec := range ng {
		t.Run("ng "+spec, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(spec)
			assert.Error(t, err)
		})
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	fs, err := ParseAll([]string{"grayscale", "rotate:180"})
	if assert.NoError(t, err) {
		assert.Equal(t, []Filter{Grayscale{}, Rotation{Angle: 180}}, fs)
	}

	_, err = ParseAll([]string{"grayscale", "nope"})
	assert.EqualError(t, err, `filters[1]: unknown filter "nope"`)
}
