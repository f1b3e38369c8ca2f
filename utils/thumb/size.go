package thumb

import (
	"errors"
	"image"
	"math"
)

// ErrSizeOverflow 計算結果のサイズがintで表せません
var ErrSizeOverflow = errors.New("resulting size overflows int")

// FitSize 縦横比を保ったままmaxSizeに収まる最大のサイズを計算します
// 元画像がmaxSizeより小さい場合は拡大されます
func FitSize(size image.Point, maxSize image.Point) image.Point {
	if size.X <= 0 || size.Y <= 0 || maxSize.X <= 0 || maxSize.Y <= 0 {
		return image.Point{}
	}

	ratio := float64(size.X) / float64(size.Y)
	boxRatio := float64(maxSize.X) / float64(maxSize.Y)

	if ratio > boxRatio {
		return image.Pt(maxSize.X, atLeastOne(float64(maxSize.X)/ratio))
	}
	return image.Pt(atLeastOne(float64(maxSize.Y)*ratio), maxSize.Y)
}

// ScaleSize sizeをscale倍したサイズを計算します
// 結果がintの範囲を超える場合はErrSizeOverflowを返します
func ScaleSize(size image.Point, scale float64) (image.Point, error) {
	if size.X <= 0 || size.Y <= 0 {
		return image.Point{}, nil
	}
	w, h := float64(size.X)*scale, float64(size.Y)*scale
	if !fitsInt(w) || !fitsInt(h) {
		return image.Point{}, ErrSizeOverflow
	}
	return image.Pt(atLeastOne(w), atLeastOne(h)), nil
}

// float64(math.MaxInt)は2^63に丸められるため、それ未満であれば変換できる
func fitsInt(v float64) bool {
	return !math.IsNaN(v) && math.Round(v) < float64(math.MaxInt)
}

// 1px未満に潰れないよう丸める
func atLeastOne(v float64) int {
	return max(1, int(math.Round(v)))
}
