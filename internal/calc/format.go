package calc

import (
	"fmt"
	"math"
	"strconv"
)

const (
	PrecisionFull Precision = iota
	PrecisionFixed2
)

// Precision selects how results with a fractional part are shown.
//
// PrecisionFull prints the shortest decimal that reads back as the same
// float64. PrecisionFixed2 rounds to two decimal places. Integral values are
// printed without a decimal point under both policies.
type Precision uint8

// Format renders v using the full-precision policy.
func Format(v float64) string {
	return PrecisionFull.Format(v)
}

// Format renders v. It must not be called with Inf or NaN.
func (p Precision) Format(v float64) string {
	if math.Mod(v, 1) == 0 {
		if v == 0 {
			return "0" // also for -0
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	if p == PrecisionFixed2 {
		if s := strconv.FormatFloat(v, 'f', 2, 64); s != "-0.00" {
			return s
		}
		return "0.00"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (p Precision) String() string {
	switch p {
	case PrecisionFull:
		return "full"
	case PrecisionFixed2:
		return "fixed2"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

// Set implements pflag.Value.
func (p *Precision) Set(s string) error {
	switch s {
	case "full":
		*p = PrecisionFull
	case "fixed2":
		*p = PrecisionFixed2
	default:
		return fmt.Errorf("invalid precision %q (want full or fixed2)", s)
	}
	return nil
}

// Type implements pflag.Value.
func (p *Precision) Type() string {
	return "precision"
}
