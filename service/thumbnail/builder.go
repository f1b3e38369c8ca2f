package thumbnail

import (
	"image"

	"github.com/traPtitech/thumbparam/service/thumbnail/filter"
	"github.com/traPtitech/thumbparam/service/thumbnail/geometry"
	"github.com/traPtitech/thumbparam/service/thumbnail/resizer"
	"github.com/traPtitech/thumbparam/utils/optional"
)

// Builder Parameterを組み立てるビルダー
//
// 各Setは何度でも任意の順番で呼び出せ、後の呼び出しが前の値を上書きします。
// ただしスケールが一度でも設定されていれば、Buildはサイズの設定に関わらず
// スケール指定のParameterを返します。
// Builderはゴルーチンセーフではありません。
type Builder struct {
	draft Draft
}

// NewBuilder 既定値で初期化されたBuilderを生成します
func NewBuilder() *Builder {
	return &Builder{draft: DefaultDraft()}
}

// SetImageType 画素形式を設定します
func (b *Builder) SetImageType(t ImageType) *Builder {
	b.draft.ImageType = t
	return b
}

// SetSize サイズを設定します
// width, heightのどちらかが負の場合はArgumentErrorを返し、どちらも変更しません
func (b *Builder) SetSize(width, height int) error {
	if err := validateSize(width, height); err != nil {
		return err
	}
	b.draft.Width = optional.From(width)
	b.draft.Height = optional.From(height)
	return nil
}

// SetSizePoint サイズを設定します
func (b *Builder) SetSizePoint(size image.Point) error {
	return b.SetSize(size.X, size.Y)
}

// SetScale 拡大縮小率を設定します
// 0以下・NaN・無限大の場合はArgumentErrorを返します
func (b *Builder) SetScale(scale float64) error {
	if err := validateScale(scale); err != nil {
		return err
	}
	b.draft.Scale = optional.From(scale)
	return nil
}

// SetRegion 元画像のうち使用する領域を設定します
// nilの場合は画像全体を使用します。rは複製して保持されます
func (b *Builder) SetRegion(r *geometry.Region) *Builder {
	b.draft.Region = r.Clone()
	return b
}

// SetKeepAspectRatio 縦横比を保つかどうかを設定します
func (b *Builder) SetKeepAspectRatio(keep bool) *Builder {
	b.draft.KeepAspectRatio = keep
	return b
}

// SetQuality 圧縮品質を設定します
// 0.0〜1.0を想定していますが範囲外の値もそのまま保持します
func (b *Builder) SetQuality(quality float32) *Builder {
	b.draft.Quality = quality
	return b
}

// SetFormat 出力形式を設定します
func (b *Builder) SetFormat(format string) *Builder {
	b.draft.Format = format
	return b
}

// SetFormatType 出力形式タイプを設定します
func (b *Builder) SetFormatType(formatType string) *Builder {
	b.draft.FormatType = formatType
	return b
}

// SetFilters リサイズ後に適用するフィルターを設定します
// 既存のフィルターは置き換えられます。nilの場合はReferenceErrorを返します
func (b *Builder) SetFilters(filters []filter.Filter) error {
	if filters == nil {
		return RefError("filters")
	}
	b.draft.Filters = append([]filter.Filter{}, filters...)
	return nil
}

// SetResizer リサイザーを設定します
// nil、またはnilポインタを保持している場合はReferenceErrorを返します
func (b *Builder) SetResizer(r resizer.Resizer) error {
	if isNil(r) {
		return RefError("resizer")
	}
	b.draft.Resizer = r
	return nil
}

// Draft 現在の設定のコピーを返します
func (b *Builder) Draft() Draft {
	d := b.draft
	d.Filters = append([]filter.Filter{}, b.draft.Filters...)
	d.Region = b.draft.Region.Clone()
	return d
}

// Build 現在の設定からParameterを生成します
// 何度呼び出しても設定は変更されません
func (b *Builder) Build() (*Parameter, error) {
	return Resolve(b.draft)
}
