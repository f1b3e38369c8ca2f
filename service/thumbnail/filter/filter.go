package filter

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/traPtitech/thumbparam/service/thumbnail/geometry"
)

var (
	// ErrInvalidAlpha 不透明度が0.0〜1.0の範囲外です
	ErrInvalidAlpha = errors.New("alpha must be between 0.0 and 1.0")
	// ErrNilImage 画像がnilです
	ErrNilImage = errors.New("image is nil")
)

// Filter リサイズ後の画像に適用する変換
type Filter interface {
	Apply(img image.Image) image.Image
}

// Pipeline 複数のフィルターを順番に適用するフィルター
type Pipeline []Filter

// Apply implements Filter interface.
func (p Pipeline) Apply(img image.Image) image.Image {
	for _, f := range p {
		img = f.Apply(img)
	}
	return img
}

func (p Pipeline) String() string {
	return fmt.Sprintf("pipeline(%d)", len(p))
}

// Rotation 時計回りに回転するフィルター
type Rotation struct {
	// Angle 回転角(度)
	Angle float64
}

// Apply implements Filter interface.
func (r Rotation) Apply(img image.Image) image.Image {
	if !isFinite(r.Angle) {
		return imaging.Clone(img)
	}
	// imaging.Rotateは反時計回り
	return imaging.Rotate(img, -r.Angle, color.Transparent)
}

func (r Rotation) String() string {
	return "rotate:" + strconv.FormatFloat(r.Angle, 'f', -1, 64)
}

// Flip 反転フィルター
type Flip int

const (
	FlipHorizontal Flip = iota
	FlipVertical
)

// Apply implements Filter interface.
func (f Flip) Apply(img image.Image) image.Image {
	if f == FlipVertical {
		return imaging.FlipV(img)
	}
	return imaging.FlipH(img)
}

func (f Flip) String() string {
	if f == FlipVertical {
		return "flip:v"
	}
	return "flip:h"
}

// Grayscale グレースケール化フィルター
type Grayscale struct{}

// Apply implements Filter interface.
func (Grayscale) Apply(img image.Image) image.Image {
	return imaging.Grayscale(img)
}

func (Grayscale) String() string {
	return "grayscale"
}

// Blur ガウシアンぼかしフィルター
type Blur struct {
	Sigma float64
}

// Apply implements Filter interface.
func (b Blur) Apply(img image.Image) image.Image {
	sigma, ok := limitSigma(b.Sigma, img.Bounds())
	if !ok {
		return imaging.Clone(img)
	}
	return imaging.Blur(img, sigma)
}

func (b Blur) String() string {
	return "blur:" + strconv.FormatFloat(b.Sigma, 'f', -1, 64)
}

// Sharpen シャープ化フィルター
type Sharpen struct {
	Sigma float64
}

// Apply implements Filter interface.
func (s Sharpen) Apply(img image.Image) image.Image {
	sigma, ok := limitSigma(s.Sigma, img.Bounds())
	if !ok {
		return imaging.Clone(img)
	}
	return imaging.Sharpen(img, sigma)
}

func (s Sharpen) String() string {
	return "sharpen:" + strconv.FormatFloat(s.Sigma, 'f', -1, 64)
}

// Transparency 画像全体の不透明度を掛け合わせるフィルター
type Transparency struct {
	alpha float64
}

// NewTransparency 不透明度alphaのフィルターを生成します
func NewTransparency(alpha float64) (Transparency, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return Transparency{}, ErrInvalidAlpha
	}
	return Transparency{alpha: alpha}, nil
}

// Alpha 不透明度
func (t Transparency) Alpha() float64 {
	return t.alpha
}

// Apply implements Filter interface.
func (t Transparency) Apply(img image.Image) image.Image {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.A = uint8(math.Round(float64(c.A) * t.alpha))
		return c
	})
}

func (t Transparency) String() string {
	return "transparency:" + strconv.FormatFloat(t.alpha, 'f', -1, 64)
}

// Watermark 画像に透かしを重ねるフィルター
type Watermark struct {
	position geometry.Position
	mark     image.Image
	opacity  float64
	insets   geometry.Insets
}

// NewWatermark 透かしフィルターを生成します
func NewWatermark(position geometry.Position, mark image.Image, opacity float64, insets geometry.Insets) (*Watermark, error) {
	if mark == nil {
		return nil, ErrNilImage
	}
	if math.IsNaN(opacity) || opacity < 0 || opacity > 1 {
		return nil, ErrInvalidAlpha
	}
	if position == nil {
		position = geometry.BottomRight
	}
	return &Watermark{position: position, mark: mark, opacity: opacity, insets: insets}, nil
}

// Apply implements Filter interface.
func (w *Watermark) Apply(img image.Image) image.Image {
	b, mb := img.Bounds(), w.mark.Bounds()
	pt := w.position.Calculate(b.Dx(), b.Dy(), mb.Dx(), mb.Dy(), w.insets)
	return imaging.Overlay(img, w.mark, pt, w.opacity)
}

func (w *Watermark) String() string {
	return "watermark"
}

// Colorize 画像全体に単色を重ねるフィルター
type Colorize struct {
	// Color nilの場合は透明
	Color   color.Color
	Opacity float64
}

// Apply implements Filter interface.
func (c Colorize) Apply(img image.Image) image.Image {
	fill := c.Color
	if fill == nil {
		fill = color.Transparent
	}
	b := img.Bounds()
	layer := imaging.New(b.Dx(), b.Dy(), fill)
	return imaging.Overlay(img, layer, b.Min, c.Opacity)
}

func (c Colorize) String() string {
	return "colorize"
}

// Canvas 指定サイズのキャンバスに画像を配置するフィルター
// キャンバスからはみ出した部分は切り取られます
type Canvas struct {
	Width, Height int
	Position      geometry.Position
	Fill          color.Color
}

// Apply implements Filter interface.
func (c Canvas) Apply(img image.Image) image.Image {
	pos, fill := c.Position, c.Fill
	if pos == nil {
		pos = geometry.Center
	}
	if fill == nil {
		fill = color.Transparent
	}
	b := img.Bounds()
	pt := pos.Calculate(c.Width, c.Height, b.Dx(), b.Dy(), geometry.Insets{})
	return imaging.Paste(imaging.New(c.Width, c.Height, fill), img, pt)
}

func (c Canvas) String() string {
	return fmt.Sprintf("canvas:%dx%d", c.Width, c.Height)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// limitSigma sigmaを画像の長辺までに制限します 0以下・NaNの場合はfalseを返します
func limitSigma(sigma float64, b image.Rectangle) (float64, bool) {
	if math.IsNaN(sigma) || sigma <= 0 {
		return 0, false
	}
	return min(sigma, float64(max(b.Dx(), b.Dy(), 1))), true
}
