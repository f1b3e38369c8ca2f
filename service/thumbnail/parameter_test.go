package thumbnail

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/traPtitech/thumbparam/service/thumbnail/filter"
	"github.com/traPtitech/thumbparam/service/thumbnail/geometry"
	"github.com/traPtitech/thumbparam/service/thumbnail/resizer"
)

func mustBuild(t *testing.T, setup func(b *Builder) error) *Parameter {
	t.Helper()
	b := NewBuilder()
	require.NoError(t, setup(b))
	p, err := b.Build()
	require.NoError(t, err)
	return p
}

func TestParameter_ResolveSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(b *Builder) error
		src   image.Point
		want  image.Point
	}{
		{
			name:  "scale",
			setup: func(b *Builder) error { return b.SetScale(0.5) },
			src:   image.Pt(200, 100),
			want:  image.Pt(100, 50),
		},
		{
			name:  "fit keeping aspect ratio",
			setup: func(b *Builder) error { return b.SetSize(100, 100) },
			src:   image.Pt(400, 200),
			want:  image.Pt(100, 50),
		},
		{
			name:  "fit upscales",
			setup: func(b *Builder) error { return b.SetSize(100, 100) },
			src:   image.Pt(20, 40),
			want:  image.Pt(50, 100),
		},
		{
			name: "exact size",
			setup: func(b *Builder) error {
				b.SetKeepAspectRatio(false)
				return b.SetSize(100, 100)
			},
			src:  image.Pt(400, 200),
			want: image.Pt(100, 100),
		},
		{
			name: "region",
			setup: func(b *Builder) error {
				b.SetRegion(geometry.NewRegion(geometry.TopLeft, geometry.AbsoluteSize{X: 50, Y: 50}))
				return b.SetScale(2)
			},
			src:  image.Pt(400, 200),
			want: image.Pt(100, 100),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := mustBuild(t, tt.setup)
			got, err := p.ResolveSize(tt.src.X, tt.src.Y)
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()
		p := mustBuild(t, func(b *Builder) error { return b.SetScale(1) })
		_, err := p.ResolveSize(0, 10)
		assert.True(t, IsArgError(err))
	})

	t.Run("scale overflow", func(t *testing.T) {
		t.Parallel()
		for _, scale := range []float64{1e17, 1e300} {
			p := mustBuild(t, func(b *Builder) error { return b.SetScale(scale) })
			_, err := p.ResolveSize(100, 100)
			assert.True(t, IsArgError(err), "scale %g", scale)
		}
	})

	t.Run("region out of bounds", func(t *testing.T) {
		t.Parallel()
		p := mustBuild(t, func(b *Builder) error {
			b.SetRegion(geometry.NewRegion(geometry.Coordinate{X: 500, Y: 500}, geometry.AbsoluteSize{X: 10, Y: 10}))
			return b.SetScale(1)
		})
		_, err := p.ResolveSize(100, 100)
		assert.ErrorIs(t, err, geometry.ErrRegionOutOfBounds)
	})
}

func TestParameter_Builder(t *testing.T) {
	t.Parallel()

	t.Run("by size", func(t *testing.T) {
		t.Parallel()
		p := mustBuild(t, func(b *Builder) error {
			b.SetFormat("jpeg").SetQuality(0.9)
			if err := b.SetFilters([]filter.Filter{filter.Grayscale{}}); err != nil {
				return err
			}
			return b.SetSize(64, 32)
		})

		p2, err := p.Builder().Build()
		require.NoError(t, err)
		assert.Equal(t, p.Summary(), p2.Summary())
		assert.Equal(t, p.Filters(), p2.Filters())
	})

	t.Run("by scale", func(t *testing.T) {
		t.Parallel()
		p := mustBuild(t, func(b *Builder) error { return b.SetScale(0.1) })

		b := p.Builder()
		require.NoError(t, b.SetSize(10, 10))
		p2, err := b.Build()
		require.NoError(t, err)
		assertSizing(t, Sizing{Mode: SizingByScale, Scale: 0.1}, p2)
	})
}

func TestParameter_RegionIsolation(t *testing.T) {
	t.Parallel()

	r := geometry.NewRegion(geometry.Center, geometry.AbsoluteSize{X: 10, Y: 10})
	b := NewBuilder().SetRegion(r)
	require.NoError(t, b.SetSize(10, 10))
	p, err := b.Build()
	require.NoError(t, err)

	want := image.Rect(45, 45, 55, 55)
	calc := func() image.Rectangle {
		t.Helper()
		rect, err := p.Region().Calculate(100, 100)
		require.NoError(t, err)
		return rect
	}

	r.Size = geometry.AbsoluteSize{X: 50, Y: 50}
	assert.Equal(t, want, calc(), "caller's region must not leak into the record")

	p.Region().Size = geometry.AbsoluteSize{X: 50, Y: 50}
	assert.Equal(t, want, calc(), "accessor must return a copy")

	b.Draft().Region.Size = geometry.AbsoluteSize{X: 50, Y: 50}
	p2, err := b.Build()
	require.NoError(t, err)
	rect, err := p2.Region().Calculate(100, 100)
	require.NoError(t, err)
	assert.Equal(t, want, rect)

	p.Builder().Draft().Region.Size = geometry.AbsoluteSize{X: 50, Y: 50}
	assert.Equal(t, want, calc())
}

func TestParameter_Summary(t *testing.T) {
	t.Parallel()

	p := mustBuild(t, func(b *Builder) error {
		if err := b.SetResizer(resizer.Bicubic); err != nil {
			return err
		}
		if err := b.SetFilters([]filter.Filter{filter.Rotation{Angle: 90}, filter.FlipHorizontal}); err != nil {
			return err
		}
		return b.SetSize(10, 20)
	})

	s := p.Summary()
	assert.Equal(t, "size", s.Mode)
	assert.Nil(t, s.Scale)
	if assert.NotNil(t, s.Width) && assert.NotNil(t, s.Height) {
		assert.Equal(t, 10, *s.Width)
		assert.Equal(t, 20, *s.Height)
	}
	assert.Equal(t, []string{"rotate:90", "flip:h"}, s.Filters)
	assert.Equal(t, "bicubic", s.Resizer)
	assert.Equal(t, "nrgba", s.ImageType)
	assert.Equal(t, OriginalFormat, s.Format)
}

func TestParameter_MarshalLogObject(t *testing.T) {
	t.Parallel()

	p := mustBuild(t, func(b *Builder) error { return b.SetScale(0.5) })

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, p.MarshalLogObject(enc))
	assert.Equal(t, "scale", enc.Fields["mode"])
	assert.Equal(t, 0.5, enc.Fields["scale"])
	assert.Equal(t, "progressive", enc.Fields["resizer"])
	assert.Equal(t, true, enc.Fields["keepAspectRatio"])
	assert.NotContains(t, enc.Fields, "width")
}

func TestImageType(t *testing.T) {
	t.Parallel()

	it, ok := ParseImageType("gray")
	assert.True(t, ok)
	assert.Equal(t, ImageTypeGray, it)
	_, ok = ParseImageType("nope")
	assert.False(t, ok)

	assert.Equal(t, "original", ImageTypeOriginal.String())
	assert.Equal(t, "ImageType(42)", ImageType(42).String())
	assert.Nil(t, ImageTypeOriginal.ColorModel())
	assert.NotNil(t, DefaultImageType.ColorModel())
}
