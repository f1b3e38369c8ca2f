package thumbnail

import (
	"fmt"
	"image"

	"github.com/samber/lo"
	"go.uber.org/zap/zapcore"

	"github.com/traPtitech/thumbparam/service/thumbnail/filter"
	"github.com/traPtitech/thumbparam/service/thumbnail/geometry"
	"github.com/traPtitech/thumbparam/service/thumbnail/resizer"
	"github.com/traPtitech/thumbparam/utils/optional"
	"github.com/traPtitech/thumbparam/utils/thumb"
)

// SizingMode サムネイルの大きさの決め方
type SizingMode int

const (
	// SizingBySize 幅と高さで指定
	SizingBySize SizingMode = iota + 1
	// SizingByScale 拡大縮小率で指定
	SizingByScale
)

func (m SizingMode) String() string {
	switch m {
	case SizingBySize:
		return "size"
	case SizingByScale:
		return "scale"
	default:
		return "unknown"
	}
}

// Sizing サムネイルの大きさの指定
// ModeがSizingByScaleの場合はScaleのみ、SizingBySizeの場合はWidthとHeightのみが意味を持ちます
type Sizing struct {
	Mode   SizingMode
	Scale  float64
	Width  int
	Height int
}

// Parameter 確定したサムネイル生成パラメーター
// 生成後は変更できず、複数のゴルーチンから共有できます
type Parameter struct {
	sizing          Sizing
	region          *geometry.Region
	keepAspectRatio bool
	format          string
	formatType      string
	quality         float32
	imageType       ImageType
	filters         []filter.Filter
	resizer         resizer.Resizer
}

// Sizing 大きさの指定を返します
func (p *Parameter) Sizing() Sizing {
	return p.sizing
}

// Size サイズ指定の場合はその幅と高さを返します
func (p *Parameter) Size() (image.Point, bool) {
	if p.sizing.Mode != SizingBySize {
		return image.Point{}, false
	}
	return image.Pt(p.sizing.Width, p.sizing.Height), true
}

// Scale スケール指定の場合はその拡大縮小率を返します
func (p *Parameter) Scale() (float64, bool) {
	if p.sizing.Mode != SizingByScale {
		return 0, false
	}
	return p.sizing.Scale, true
}

// Region 使用する元画像の領域の複製を返します nilの場合は画像全体
func (p *Parameter) Region() *geometry.Region {
	return p.region.Clone()
}

// KeepAspectRatio 縦横比を保つかどうか
func (p *Parameter) KeepAspectRatio() bool {
	return p.keepAspectRatio
}

// Format 出力形式 元画像と同じ場合はOriginalFormat
func (p *Parameter) Format() string {
	return p.format
}

// FormatType 出力形式タイプ コーデック既定の場合はDefaultFormatType
func (p *Parameter) FormatType() string {
	return p.formatType
}

// Quality 圧縮品質
func (p *Parameter) Quality() float32 {
	return p.quality
}

// ImageType 画素形式
func (p *Parameter) ImageType() ImageType {
	return p.imageType
}

// Filters 適用順に並んだフィルターのコピーを返します
func (p *Parameter) Filters() []filter.Filter {
	return append([]filter.Filter{}, p.filters...)
}

// Resizer リサイザー
func (p *Parameter) Resizer() resizer.Resizer {
	return p.resizer
}

// ResolveSize 幅srcW・高さsrcHの元画像から生成されるサムネイルの大きさを計算します
// 領域が設定されている場合は、その領域の大きさを元に計算します
func (p *Parameter) ResolveSize(srcW, srcH int) (image.Point, error) {
	if srcW <= 0 || srcH <= 0 {
		return image.Point{}, ArgError("src", "source image must not be empty")
	}
	if p.region != nil {
		rect, err := p.region.Calculate(srcW, srcH)
		if err != nil {
			return image.Point{}, fmt.Errorf("failed to calculate region: %w", err)
		}
		srcW, srcH = rect.Dx(), rect.Dy()
	}

	src := image.Pt(srcW, srcH)
	switch p.sizing.Mode {
	case SizingByScale:
		size, err := thumb.ScaleSize(src, p.sizing.Scale)
		if err != nil {
			return image.Point{}, ArgError("scale", err.Error())
		}
		return size, nil
	case SizingBySize:
		box := image.Pt(p.sizing.Width, p.sizing.Height)
		if !p.keepAspectRatio {
			return box, nil
		}
		return thumb.FitSize(src, box), nil
	default:
		return image.Point{}, ErrInvalidState
	}
}

// Builder このParameterと同じ設定のBuilderを生成します
func (p *Parameter) Builder() *Builder {
	d := Draft{
		ImageType:       p.imageType,
		KeepAspectRatio: p.keepAspectRatio,
		Quality:         p.quality,
		Format:          p.format,
		FormatType:      p.formatType,
		Filters:         p.Filters(),
		Resizer:         p.resizer,
		Region:          p.region.Clone(),
	}
	switch p.sizing.Mode {
	case SizingByScale:
		d.Scale = optional.From(p.sizing.Scale)
	case SizingBySize:
		d.Width = optional.From(p.sizing.Width)
		d.Height = optional.From(p.sizing.Height)
	}
	return &Builder{draft: d}
}

// Summary 表示・シリアライズ用のParameterの要約
type Summary struct {
	Mode            string   `json:"mode" yaml:"mode"`
	Scale           *float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Width           *int     `json:"width,omitempty" yaml:"width,omitempty"`
	Height          *int     `json:"height,omitempty" yaml:"height,omitempty"`
	Region          bool     `json:"region" yaml:"region"`
	KeepAspectRatio bool     `json:"keepAspectRatio" yaml:"keepAspectRatio"`
	ImageType       string   `json:"imageType" yaml:"imageType"`
	Quality         float32  `json:"quality" yaml:"quality"`
	Format          string   `json:"format" yaml:"format"`
	FormatType      string   `json:"formatType" yaml:"formatType"`
	Filters         []string `json:"filters" yaml:"filters"`
	Resizer         string   `json:"resizer" yaml:"resizer"`
}

// Summary Parameterの要約を返します
func (p *Parameter) Summary() Summary {
	s := Summary{
		Mode:            p.sizing.Mode.String(),
		Region:          p.region != nil,
		KeepAspectRatio: p.keepAspectRatio,
		ImageType:       p.imageType.String(),
		Quality:         p.quality,
		Format:          p.format,
		FormatType:      p.formatType,
		Filters:         lo.Map(p.filters, func(f filter.Filter, _ int) string { return describe(f) }),
		Resizer:         describe(p.resizer),
	}
	switch p.sizing.Mode {
	case SizingByScale:
		s.Scale = lo.ToPtr(p.sizing.Scale)
	case SizingBySize:
		s.Width = lo.ToPtr(p.sizing.Width)
		s.Height = lo.ToPtr(p.sizing.Height)
	}
	return s
}

// MarshalLogObject implements zapcore.ObjectMarshaler interface.
func (p *Parameter) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("mode", p.sizing.Mode.String())
	switch p.sizing.Mode {
	case SizingByScale:
		enc.AddFloat64("scale", p.sizing.Scale)
	case SizingBySize:
		enc.AddInt("width", p.sizing.Width)
		enc.AddInt("height", p.sizing.Height)
	}
	enc.AddBool("region", p.region != nil)
	enc.AddBool("keepAspectRatio", p.keepAspectRatio)
	enc.AddString("imageType", p.imageType.String())
	enc.AddFloat32("quality", p.quality)
	enc.AddString("format", p.format)
	enc.AddString("formatType", p.formatType)
	enc.AddString("resizer", describe(p.resizer))
	return enc.AddArray("filters", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, f := range p.filters {
			ae.AppendString(describe(f))
		}
		return nil
	}))
}

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
