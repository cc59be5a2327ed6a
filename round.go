package journal

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Number is the set of Go numeric types that can be turned into a decimal.
type Number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64
}

// D converts value into a decimal.Decimal.
//
// Floats are converted using their shortest decimal representation, so D(10.123)
// is exactly 10.123. Strings must be valid decimals: an invalid string is a
// programming error and panics.
func D[T Number | string | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case string:
		return decimal.RequireFromString(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// RoundDown truncates value to exactly decimals fractional digits, rounding
// toward zero.
//
// A negative or NaN decimals means "no rounding": value is returned unchanged,
// converted to a decimal. Other values must be whole numbers up to
// math.MaxInt32, otherwise RoundDown panics (see CheckDecimals).
func RoundDown[V Number | string | decimal.Decimal, P int | int32 | float64](value V, decimals P) decimal.Decimal {
	d := D(value)
	places, ok := roundingPlaces(decimals)
	if !ok {
		return d
	}
	return d.RoundDown(places)
}

// CheckDecimals returns an error if decimals is neither a "no rounding" value
// nor a valid number of places for RoundDown.
func CheckDecimals(decimals float64) error {
	if math.IsNaN(decimals) || decimals < 0 {
		return nil
	}
	if decimals != math.Trunc(decimals) || decimals > math.MaxInt32 {
		return fmt.Errorf("invalid number of decimals %v, want a whole number up to %d", decimals, math.MaxInt32)
	}
	return nil
}

// roundingPlaces returns the number of places to round to, and false when no
// rounding must happen.
func roundingPlaces[P int | int32 | float64](decimals P) (int32, bool) {
	f := float64(decimals)
	if err := CheckDecimals(f); err != nil {
		panic(err.Error())
	}
	if math.IsNaN(f) || f < 0 {
		return 0, false
	}
	return int32(f), true
}
