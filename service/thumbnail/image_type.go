package thumbnail

import (
	"image/color"
	"strconv"
)

// ImageType サムネイルの画素形式
type ImageType int

const (
	// ImageTypeOriginal 元画像と同じ画素形式
	ImageTypeOriginal ImageType = -1
	// ImageTypeNRGBA 8bit 非乗算済みRGBA
	ImageTypeNRGBA ImageType = 1
	// ImageTypeRGBA 8bit 乗算済みRGBA
	ImageTypeRGBA ImageType = 2
	// ImageTypeGray 8bit グレースケール
	ImageTypeGray ImageType = 3
	// ImageTypeGray16 16bit グレースケール
	ImageTypeGray16 ImageType = 4
	// ImageTypeNRGBA64 16bit 非乗算済みRGBA
	ImageTypeNRGBA64 ImageType = 5
	// ImageTypeRGBA64 16bit 乗算済みRGBA
	ImageTypeRGBA64 ImageType = 6
	// ImageTypeCMYK CMYK
	ImageTypeCMYK ImageType = 7
)

// DefaultImageType 既定の画素形式
const DefaultImageType = ImageTypeNRGBA

var imageTypeNames = map[ImageType]string{
	ImageTypeOriginal: "original",
	ImageTypeNRGBA:    "nrgba",
	ImageTypeRGBA:     "rgba",
	ImageTypeGray:     "gray",
	ImageTypeGray16:   "gray16",
	ImageTypeNRGBA64:  "nrgba64",
	ImageTypeRGBA64:   "rgba64",
	ImageTypeCMYK:     "cmyk",
}

// ParseImageType 名前から画素形式を返します
func ParseImageType(name string) (ImageType, bool) {
	for t, n := range imageTypeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

func (t ImageType) String() string {
	if n, ok := imageTypeNames[t]; ok {
		return n
	}
	return "ImageType(" + strconv.Itoa(int(t)) + ")"
}

// ColorModel 画素形式に対応するcolor.Modelを返します
// ImageTypeOriginalや未知の形式の場合はnilを返します
func (t ImageType) ColorModel() color.Model {
	switch t {
	case ImageTypeNRGBA:
		return color.NRGBAModel
	case ImageTypeRGBA:
		return color.RGBAModel
	case ImageTypeGray:
		return color.GrayModel
	case ImageTypeGray16:
		return color.Gray16Model
	case ImageTypeNRGBA64:
		return color.NRGBA64Model
	case ImageTypeRGBA64:
		return color.RGBA64Model
	case ImageTypeCMYK:
		return color.CMYKModel
	default:
		return nil
	}
}
