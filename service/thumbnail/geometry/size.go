package geometry

import (
	"errors"
	"image"
	"math"
)

// ErrInvalidRelativeSize 相対サイズの倍率が0.0〜1.0の範囲外です
var ErrInvalidRelativeSize = errors.New("relative size must be between 0.0 and 1.0")

// Size 囲み領域の大きさから対象の大きさを計算します
type Size interface {
	Calculate(enclosingW, enclosingH int) image.Point
}

// AbsoluteSize 囲み領域に依存しない固定の大きさ
type AbsoluteSize image.Point

// Calculate implements Size interface.
func (s AbsoluteSize) Calculate(_, _ int) image.Point {
	return image.Point(s)
}

// RelativeSize 囲み領域に対する倍率で表される大きさ
type RelativeSize struct {
	scale float64
}

// NewRelativeSize 倍率scaleの相対サイズを生成します
func NewRelativeSize(scale float64) (RelativeSize, error) {
	if math.IsNaN(scale) || scale < 0 || scale > 1 {
		return RelativeSize{}, ErrInvalidRelativeSize
	}
	return RelativeSize{scale: scale}, nil
}

// Scale 倍率
func (s RelativeSize) Scale() float64 {
	return s.scale
}

// Calculate implements Size interface.
func (s RelativeSize) Calculate(enclosingW, enclosingH int) image.Point {
	return image.Pt(
		int(math.Round(float64(enclosingW)*s.scale)),
		int(math.Round(float64(enclosingH)*s.scale)),
	)
}
