package geometry

import (
	"errors"
	"image"
)

// ErrRegionOutOfBounds 領域が画像と重なっていません
var ErrRegionOutOfBounds = errors.New("region does not intersect the image")

// ErrIncompleteRegion 領域の位置または大きさが設定されていません
var ErrIncompleteRegion = errors.New("region needs both position and size")

// Region 元画像のうちサムネイル生成に使用する矩形領域
type Region struct {
	Position Position
	Size     Size
}

// NewRegion Regionを生成します
func NewRegion(p Position, s Size) *Region {
	return &Region{Position: p, Size: s}
}

// Clone 領域の複製を返します rがnilの場合はnilを返します
func (r *Region) Clone() *Region {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// Calculate 幅w・高さhの画像に対する領域を計算します
// 計算結果は画像の範囲内に切り詰められます
func (r *Region) Calculate(w, h int) (image.Rectangle, error) {
	if r.Position == nil || r.Size == nil {
		return image.Rectangle{}, ErrIncompleteRegion
	}

	size := r.Size.Calculate(w, h)
	pt := r.Position.Calculate(w, h, size.X, size.Y, Insets{})

	rect := image.Rectangle{Min: pt, Max: pt.Add(size)}.Intersect(image.Rect(0, 0, w, h))
	if rect.Empty() {
		return image.Rectangle{}, ErrRegionOutOfBounds
	}
	return rect, nil
}
