package thumbnail

import (
	"errors"
	"math"

	vd "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	widthRule  = vd.Min(0).Error("width must be greater than or equal to 0")
	heightRule = vd.Min(0).Error("height must be greater than or equal to 0")
)

// scaleRule 0以下・NaN・無限大を拒否します
var scaleRule = vd.By(func(value interface{}) error {
	f, ok := value.(float64)
	if !ok {
		return errors.New("scaling factor must be a float64")
	}
	if f <= 0 {
		return errors.New("scaling factor is less than or equal to 0")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("scaling factor must be a rational number")
	}
	return nil
})

func validateSize(width, height int) error {
	if err := vd.Validate(width, widthRule); err != nil {
		return ArgError("width", err.Error())
	}
	if err := vd.Validate(height, heightRule); err != nil {
		return ArgError("height", err.Error())
	}
	return nil
}

func validateScale(scale float64) error {
	if err := vd.Validate(scale, scaleRule); err != nil {
		return ArgError("scale", err.Error())
	}
	return nil
}

// isNil vがnil、またはnilポインタなどを保持したインターフェースかどうか
func isNil(v any) bool {
	_, isNil := vd.Indirect(v)
	return isNil
}
