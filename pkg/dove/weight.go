package dove

import (
	"fmt"
	"math"
)

const (
	lbsPerQuarter       = 28
	lbsPerHundredweight = 112
	kgPerLb             = 0.45359237
)

// Weight is the weight of the heaviest bell of a ring.
type Weight struct {
	Lbs float64
}

func WeightFromKilograms(kg float64) Weight {
	return Weight{Lbs: kg / kgPerLb}
}

func (w Weight) Kilograms() float64 {
	return w.Lbs * kgPerLb
}

// Hundredweight splits the weight into imperial cwt, quarters and pounds,
// rounded to the nearest pound.
func (w Weight) Hundredweight() (cwt, qr, lb int) {
	total := int(math.Round(w.Lbs))
	cwt = total / lbsPerHundredweight
	total %= lbsPerHundredweight
	qr = total / lbsPerQuarter
	lb = total % lbsPerQuarter
	return cwt, qr, lb
}

// String renders the weight the way ringers write it, e.g. "24-2-14".
func (w Weight) String() string {
	cwt, qr, lb := w.Hundredweight()
	return fmt.Sprintf("%d-%d-%d", cwt, qr, lb)
}
