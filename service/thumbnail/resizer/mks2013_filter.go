package resizer

import (
	"math"

	"github.com/disintegration/imaging"
)

// Magic Kernel Sharp 2013
// http://johncostella.com/magic/
var mks2013Filter = imaging.ResampleFilter{
	Support: 2.5,
	Kernel:  mks2013Kernel,
}

func mks2013Kernel(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x >= 2.5:
		return 0.0
	case x >= 1.5:
		return -0.125 * (x - 2.5) * (x - 2.5)
	case x >= 0.5:
		return 0.25 * (4*x*x - 11*x + 7)
	default:
		return 1.0625 - 1.75*x*x
	}
}
