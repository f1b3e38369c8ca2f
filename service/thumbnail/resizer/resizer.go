package resizer

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resizer 画像のリサイズアルゴリズム
type Resizer interface {
	// Resize srcを幅width・高さheightにリサイズした画像を返します
	// width, heightのどちらかが0以下の場合は空の画像を返します
	Resize(src image.Image, width, height int) *image.NRGBA
}

var (
	// Progressive 目標サイズに近づくまで半分ずつ縮小してから最後にバイリニアで仕上げるリサイザー
	Progressive Resizer = &progressive{step: imaging.Linear, final: imaging.Linear}
	// NearestNeighbor 最近傍補間
	NearestNeighbor Resizer = &drawResizer{name: "nearest_neighbor", scaler: draw.NearestNeighbor}
	// ApproxBiLinear 近似バイリニア補間
	ApproxBiLinear Resizer = &drawResizer{name: "approx_bilinear", scaler: draw.ApproxBiLinear}
	// Bilinear バイリニア補間
	Bilinear Resizer = &filterResizer{name: "bilinear", filter: imaging.Linear}
	// Bicubic バイキュービック補間 (Catmull-Rom)
	Bicubic Resizer = &filterResizer{name: "bicubic", filter: imaging.CatmullRom}
	// Lanczos Lanczos補間
	Lanczos Resizer = &filterResizer{name: "lanczos", filter: imaging.Lanczos}
	// MKS2013 Magic Kernel Sharp 2013
	MKS2013 Resizer = &filterResizer{name: "mks2013", filter: mks2013Filter}
)

// Default 既定のリサイザー
var Default = Progressive

var byName = map[string]Resizer{
	"progressive":      Progressive,
	"nearest_neighbor": NearestNeighbor,
	"approx_bilinear":  ApproxBiLinear,
	"bilinear":         Bilinear,
	"bicubic":          Bicubic,
	"lanczos":          Lanczos,
	"mks2013":          MKS2013,
	"nfnt_bilinear":    &Interpolation{name: "nfnt_bilinear", fn: resize.Bilinear},
	"nfnt_lanczos3":    &Interpolation{name: "nfnt_lanczos3", fn: resize.Lanczos3},
}

// ByName 名前から組み込みのリサイザーを返します
func ByName(name string) (Resizer, bool) {
	r, ok := byName[name]
	return r, ok
}

// Names 組み込みのリサイザー名の一覧を返します
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func emptyImage() *image.NRGBA {
	return image.NewNRGBA(image.Rectangle{})
}

type filterResizer struct {
	name   string
	filter imaging.ResampleFilter
}

func (r *filterResizer) Resize(src image.Image, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return emptyImage()
	}
	return imaging.Resize(src, width, height, r.filter)
}

func (r *filterResizer) String() string {
	return r.name
}

type drawResizer struct {
	name   string
	scaler draw.Scaler
}

func (r *drawResizer) Resize(src image.Image, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return emptyImage()
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	r.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func (r *drawResizer) String() string {
	return r.name
}

type progressive struct {
	step  imaging.ResampleFilter
	final imaging.ResampleFilter
}

func (r *progressive) Resize(src image.Image, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return emptyImage()
	}

	cur := imaging.Clone(src)
	w, h := cur.Bounds().Dx(), cur.Bounds().Dy()

	// 縮小時は目標の2倍以内になるまで半分ずつ縮める
	for w/2 >= width && h/2 >= height {
		w, h = w/2, h/2
		cur = imaging.Resize(cur, w, h, r.step)
	}
	if w == width && h == height {
		return cur
	}
	return imaging.Resize(cur, width, height, r.final)
}

func (r *progressive) String() string {
	return "progressive"
}

// Interpolation nfnt/resizeの補間関数によるリサイザー
type Interpolation struct {
	name string
	fn   resize.InterpolationFunction
}

// NewInterpolation nfnt/resizeの補間関数fnを使用するリサイザーを生成します
func NewInterpolation(fn resize.InterpolationFunction) *Interpolation {
	return &Interpolation{name: "interpolation", fn: fn}
}

// Resize implements Resizer interface.
func (r *Interpolation) Resize(src image.Image, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return emptyImage()
	}
	return imaging.Clone(resize.Resize(uint(width), uint(height), src, r.fn))
}

func (r *Interpolation) String() string {
	return r.name
}
