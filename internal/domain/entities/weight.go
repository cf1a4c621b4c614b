package entities

import (
	"fmt"
	"math"
)

// Weight is a donated-goods quantity in whole kilograms.
//
// Rounding policy: input is rounded UP to the next whole kilogram at
// construction, as an over-counting safety margin. The rounding happens
// exactly once; values read back from storage are already whole.
type Weight struct {
	kg int
}

// WeightFromKg builds a Weight from a raw kilogram reading.
// Zero and negative inputs are rejected.
func WeightFromKg(v float64) (Weight, error) {
	if v <= 0 {
		return Weight{}, fmt.Errorf("%w: got %v", ErrInvalidWeight, v)
	}
	return Weight{kg: int(math.Ceil(v))}, nil
}

// Kg returns the rounded value in whole kilograms.
func (w Weight) Kg() int {
	return w.kg
}
