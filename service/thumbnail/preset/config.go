package preset

import (
	"errors"
	"fmt"
	"math"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"

	"github.com/traPtitech/thumbparam/service/thumbnail"
	"github.com/traPtitech/thumbparam/service/thumbnail/filter"
	"github.com/traPtitech/thumbparam/service/thumbnail/geometry"
	"github.com/traPtitech/thumbparam/service/thumbnail/resizer"
	"github.com/traPtitech/thumbparam/utils/optional"
)

// Config 設定ファイルから読み込むサムネイルプリセット
type Config struct {
	// Width 幅 Heightと同時に指定する
	Width optional.Of[int] `mapstructure:"width" yaml:"width,omitempty" json:"width"`
	// Height 高さ Widthと同時に指定する
	Height optional.Of[int] `mapstructure:"height" yaml:"height,omitempty" json:"height"`
	// Scale 拡大縮小率 指定した場合はWidth, Heightより優先される
	Scale optional.Of[float64] `mapstructure:"scale" yaml:"scale,omitempty" json:"scale"`
	// KeepAspectRatio 縦横比を保つかどうか (default: true)
	KeepAspectRatio optional.Of[bool] `mapstructure:"keepAspectRatio" yaml:"keepAspectRatio,omitempty" json:"keepAspectRatio"`
	// Quality 圧縮品質 (default: 0.75)
	Quality optional.Of[float32] `mapstructure:"quality" yaml:"quality,omitempty" json:"quality"`
	// Format 出力形式 (default: original)
	Format string `mapstructure:"format" yaml:"format,omitempty" json:"format,omitempty"`
	// FormatType 出力形式タイプ (default: default)
	FormatType string `mapstructure:"formatType" yaml:"formatType,omitempty" json:"formatType,omitempty"`
	// ImageType 画素形式 (default: nrgba)
	ImageType string `mapstructure:"imageType" yaml:"imageType,omitempty" json:"imageType,omitempty"`
	// Resizer リサイザー名 (default: progressive)
	Resizer string `mapstructure:"resizer" yaml:"resizer,omitempty" json:"resizer,omitempty"`
	// Filters 適用順のフィルター
	Filters []string `mapstructure:"filters" yaml:"filters,omitempty" json:"filters,omitempty"`
	// Region 使用する元画像の領域
	Region *RegionConfig `mapstructure:"region" yaml:"region,omitempty" json:"region,omitempty"`
}

// RegionConfig 領域設定
type RegionConfig struct {
	// Position 配置位置 (default: center)
	Position string `mapstructure:"position" yaml:"position,omitempty" json:"position,omitempty"`
	// X, Y Positionを指定しない場合の左上座標
	X int `mapstructure:"x" yaml:"x,omitempty" json:"x,omitempty"`
	Y int `mapstructure:"y" yaml:"y,omitempty" json:"y,omitempty"`
	// Width, Height 領域の大きさ
	Width  int `mapstructure:"width" yaml:"width,omitempty" json:"width,omitempty"`
	Height int `mapstructure:"height" yaml:"height,omitempty" json:"height,omitempty"`
	// Relative 0より大きい場合は画像に対する倍率で大きさを決める
	Relative float64 `mapstructure:"relative" yaml:"relative,omitempty" json:"relative,omitempty"`
}

var imageTypeRule = vd.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, ok := thumbnail.ParseImageType(s); !ok {
		return errors.New("unknown image type")
	}
	return nil
})

var positionRule = vd.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, ok := geometry.ParsePositions(s); !ok {
		return errors.New("unknown position")
	}
	return nil
})

// Validate implements validation.Validatable interface.
func (c Config) Validate() error {
	return vd.ValidateStruct(&c,
		vd.Field(&c.Width, vd.Min(0), vd.When(c.Height.Valid, vd.NotNil)),
		vd.Field(&c.Height, vd.Min(0), vd.When(c.Width.Valid, vd.NotNil)),
		vd.Field(&c.Scale, vd.When(c.Scale.Valid, vd.By(func(interface{}) error {
			if math.IsNaN(c.Scale.V) || math.IsInf(c.Scale.V, 0) || c.Scale.V <= 0 {
				return errors.New("must be a finite number greater than 0")
			}
			return nil
		}))),
		vd.Field(&c.ImageType, imageTypeRule),
		vd.Field(&c.Resizer, vd.In(lo.ToAnySlice(resizer.Names())...)),
		vd.Field(&c.Region),
	)
}

// Validate implements validation.Validatable interface.
func (c RegionConfig) Validate() error {
	return vd.ValidateStruct(&c,
		vd.Field(&c.Position, positionRule),
		vd.Field(&c.Width, vd.Min(0)),
		vd.Field(&c.Height, vd.Min(0)),
		vd.Field(&c.Relative, vd.Min(0.0), vd.Max(1.0)),
	)
}

// Build プリセットからParameterを生成します
func (c Config) Build() (*thumbnail.Parameter, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b := thumbnail.NewBuilder()
	if c.Width.Valid && c.Height.Valid {
		if err := b.SetSize(c.Width.V, c.Height.V); err != nil {
			return nil, err
		}
	}
	if c.Scale.Valid {
		if err := b.SetScale(c.Scale.V); err != nil {
			return nil, err
		}
	}
	d := b.Draft()
	b.SetKeepAspectRatio(c.KeepAspectRatio.ValueOr(d.KeepAspectRatio)).
		SetQuality(c.Quality.ValueOr(d.Quality))
	if c.Format != "" {
		b.SetFormat(c.Format)
	}
	if c.FormatType != "" {
		b.SetFormatType(c.FormatType)
	}
	if c.ImageType != "" {
		t, _ := thumbnail.ParseImageType(c.ImageType)
		b.SetImageType(t)
	}
	if c.Resizer != "" {
		r, _ := resizer.ByName(c.Resizer)
		if err := b.SetResizer(r); err != nil {
			return nil, err
		}
	}
	if len(c.Filters) > 0 {
		fs, err := filter.ParseAll(c.Filters)
		if err != nil {
			return nil, err
		}
		if err := b.SetFilters(fs); err != nil {
			return nil, err
		}
	}
	if c.Region != nil {
		r, err := c.Region.build()
		if err != nil {
			return nil, err
		}
		b.SetRegion(r)
	}

	return b.Build()
}

func (c RegionConfig) build() (*geometry.Region, error) {
	var pos geometry.Position = geometry.Coordinate{X: c.X, Y: c.Y}
	if c.Position != "" {
		pos, _ = geometry.ParsePositions(c.Position)
	}

	var size geometry.Size = geometry.AbsoluteSize{X: c.Width, Y: c.Height}
	if c.Relative > 0 {
		rs, err := geometry.NewRelativeSize(c.Relative)
		if err != nil {
			return nil, fmt.Errorf("region: %w", err)
		}
		size = rs
	}
	return geometry.NewRegion(pos, size), nil
}
