package thumbnail

import (
	"github.com/traPtitech/thumbparam/service/thumbnail/filter"
	"github.com/traPtitech/thumbparam/service/thumbnail/geometry"
	"github.com/traPtitech/thumbparam/service/thumbnail/resizer"
	"github.com/traPtitech/thumbparam/utils/optional"
)

const (
	// DefaultQuality 既定の圧縮品質
	//
	// Goのimage/jpegの既定値(75)に合わせた具体的な値です。
	// 「コーデック既定の品質」を表す特別な値はないため、
	// Parameterから品質が明示的に指定されたかどうかは判別できません。
	DefaultQuality float32 = 0.75
	// OriginalFormat 元画像と同じ出力形式を使用することを表します
	OriginalFormat = "original"
	// DefaultFormatType コーデック既定の出力形式タイプを使用することを表します
	DefaultFormatType = "default"
)

// Draft 確定前のサムネイル生成パラメーター
//
// Width・HeightとScaleは未設定を区別するためオプショナルです。
// 両方が設定されている場合はScaleが優先されます。
type Draft struct {
	Width  optional.Of[int]
	Height optional.Of[int]
	Scale  optional.Of[float64]

	ImageType       ImageType
	KeepAspectRatio bool
	// Quality 圧縮品質 0.0〜1.0を想定していますが範囲は検証しません
	Quality    float32
	Format     string
	FormatType string
	Filters    []filter.Filter
	Resizer    resizer.Resizer
	// Region nilの場合は画像全体
	Region *geometry.Region
}

// DefaultDraft 既定値で初期化されたDraftを返します
func DefaultDraft() Draft {
	return Draft{
		ImageType:       DefaultImageType,
		KeepAspectRatio: true,
		Quality:         DefaultQuality,
		Format:          OriginalFormat,
		FormatType:      DefaultFormatType,
		Filters:         []filter.Filter{},
		Resizer:         resizer.Default,
	}
}

// Resolve Draftを検証し、確定したParameterを返します
//
// Scaleが設定されていればサイズの設定に関わらずスケール指定、
// そうでなくWidthとHeightが両方設定されていればサイズ指定のParameterになります。
// どちらでもない場合はErrInvalidStateを返します。
func Resolve(d Draft) (*Parameter, error) {
	if d.Filters == nil {
		return nil, RefError("filters")
	}
	if isNil(d.Resizer) {
		return nil, RefError("resizer")
	}

	var s Sizing
	switch {
	case d.Scale.Valid:
		if err := validateScale(d.Scale.V); err != nil {
			return nil, err
		}
		s = Sizing{Mode: SizingByScale, Scale: d.Scale.V}
	case d.Width.Valid && d.Height.Valid:
		if err := validateSize(d.Width.V, d.Height.V); err != nil {
			return nil, err
		}
		s = Sizing{Mode: SizingBySize, Width: d.Width.V, Height: d.Height.V}
	default:
		return nil, ErrInvalidState
	}

	return &Parameter{
		sizing:          s,
		region:          d.Region.Clone(),
		keepAspectRatio: d.KeepAspectRatio,
		format:          d.Format,
		formatType:      d.FormatType,
		quality:         d.Quality,
		imageType:       d.ImageType,
		filters:         append([]filter.Filter{}, d.Filters...),
		resizer:         d.Resizer,
	}, nil
}
