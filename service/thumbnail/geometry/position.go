package geometry

import "image"

// Position 囲み領域の中に対象を配置する位置を計算します
type Position interface {
	// Calculate 幅enclosingW・高さenclosingHの領域内に、幅w・高さhの対象を
	// 配置するときの左上座標を返します
	Calculate(enclosingW, enclosingH, w, h int, insets Insets) image.Point
}

// Insets 領域の内側余白
type Insets struct {
	Top, Left, Bottom, Right int
}

// Positions 定義済みの配置位置
type Positions int

const (
	TopLeft Positions = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var positionNames = [...]string{
	TopLeft:      "top_left",
	TopCenter:    "top_center",
	TopRight:     "top_right",
	CenterLeft:   "center_left",
	Center:       "center",
	CenterRight:  "center_right",
	BottomLeft:   "bottom_left",
	BottomCenter: "bottom_center",
	BottomRight:  "bottom_right",
}

func (p Positions) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "unknown"
	}
	return positionNames[p]
}

// ParsePositions 名前から定義済みの配置位置を返します
func ParsePositions(name string) (Positions, bool) {
	for i, n := range positionNames {
		if n == name {
			return Positions(i), true
		}
	}
	return 0, false
}

// Calculate implements Position interface.
func (p Positions) Calculate(enclosingW, enclosingH, w, h int, insets Insets) image.Point {
	var x, y int

	switch p {
	case TopLeft, CenterLeft, BottomLeft:
		x = insets.Left
	case TopCenter, Center, BottomCenter:
		x = enclosingW/2 - w/2
	case TopRight, CenterRight, BottomRight:
		x = enclosingW - w - insets.Right
	}

	switch p {
	case TopLeft, TopCenter, TopRight:
		y = insets.Top
	case CenterLeft, Center, CenterRight:
		y = enclosingH/2 - h/2
	case BottomLeft, BottomCenter, BottomRight:
		y = enclosingH - h - insets.Bottom
	}

	return image.Pt(x, y)
}

// Coordinate 固定座標による配置位置
type Coordinate image.Point

// Calculate implements Position interface.
// 囲み領域や余白に関わらず、常に自身の座標を返します
func (c Coordinate) Calculate(_, _, _, _ int, _ Insets) image.Point {
	return image.Point(c)
}
