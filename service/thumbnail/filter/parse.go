package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse "name" または "name:arg" 形式の文字列からフィルターを生成します
//
//	rotate:90, flip:h, flip:v, grayscale, blur:1.5, sharpen:0.5, transparency:0.3
func Parse(spec string) (Filter, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(spec), ":")

	switch name {
	case "grayscale":
		return Grayscale{}, nil
	case "flip":
		switch arg {
		case "h", "horizontal":
			return FlipHorizontal, nil
		case "v", "vertical":
			return FlipVertical, nil
		}
		return nil, fmt.Errorf("invalid flip direction %q", arg)
	case "rotate", "blur", "sharpen", "transparency":
		if !hasArg {
			return nil, fmt.Errorf("filter %q requires an argument", name)
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid argument for %q: %w", name, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("argument for %q must be a finite number", name)
		}
		switch name {
		case "rotate":
			return Rotation{Angle: v}, nil
		case "blur":
			return Blur{Sigma: v}, nil
		case "sharpen":
			return Sharpen{Sigma: v}, nil
		default:
			t, err := NewTransparency(v)
			if err != nil {
				return nil, err
			}
			return t, nil
		}
	default:
		return nil, fmt.Errorf("unknown filter %q", name)
	}
}

// ParseAll 文字列の並びからフィルターを順番通りに生成します
func ParseAll(specs []string) ([]Filter, error) {
	filters := make([]Filter, 0, len(specs))
	for i, s := range specs {
		f, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("filters[%d]: %w", i, err)
		}
		filters = append(filters, f)
	}
	return filters, nil
}
