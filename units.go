package units

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// SatoshiPlaces is the number of decimal places used by [ToBaseUnit] and
// [FromBaseUnit]: 1 major unit = 100,000,000 minor units.
const SatoshiPlaces = 8

// Errors returned by the conversion functions, wrapped with the amount being converted.
var (
	ErrInvalidType          = errors.New("amount must be a number, a decimal string or a big integer")
	ErrInvalidDecimalPlaces = errors.New("decimal places must be a non-negative integer")
	ErrNotWholeNumber       = errors.New("minor units must be a whole number")
	ErrFractionalBigIntLoss = errors.New("cannot return a big integer with a fractional part")
	ErrIntegerOverflow      = errors.New("integer overflow, request String or BigInt return type instead")
	ErrPrecisionLoss        = errors.New("amount has more fractional digits than decimal places")
	ErrDecimalOverflow      = errors.New("result does not fit into a decimal")
	ErrSyntax               = errors.New("invalid decimal syntax")
)

// maxSafeInt is the largest integer n such that n and n+1 are both exactly
// representable as float64 (2^53 - 1).
var maxSafeInt = big.NewInt(1<<53 - 1)

// ReturnType selects the representation of a conversion result.
// The zero value is [Number].
type ReturnType int

const (
	Number  ReturnType = iota // float64
	String                    // decimal string
	BigInt                    // *big.Int
	Decimal                   // decimal.Decimal
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (rt ReturnType) String() string {
	switch rt {
	case Number:
		return "number"
	case String:
		return "string"
	case BigInt:
		return "bigint"
	case Decimal:
		return "decimal"
	default:
		return fmt.Sprintf("ReturnType(%d)", int(rt))
	}
}

func (rt ReturnType) valid() bool {
	return rt >= Number && rt <= Decimal
}

// MinorToMajor converts an amount of minor units (e.g. satoshis) to major
// units (e.g. bitcoins), where one major unit equals 10^places minor units.
// The amount must be one of the types accepted by [IsNumber], [IsString],
// [IsBigInt] or a [decimal.Decimal], and it must hold a whole number.
//
// Depending on rt, the result is a float64, a decimal string with exactly
// places fractional digits, a big integer or a decimal.
// Negative zero is converted to non-negative zero.
//
// MinorToMajor returns an error if:
//   - the amount has an unsupported type or is NaN or Inf;
//   - the amount is not a whole number;
//   - places is negative;
//   - rt is BigInt and the result has a non-zero fractional part;
//   - rt is Decimal and the result does not fit into a [decimal.Decimal];
//   - rt is Number and the result is out of the float64 range.
func MinorToMajor(amount any, places int, rt ReturnType) (Value, error) {
	v, err := minorToMajor(amount, places, rt)
	if err != nil {
		return Value{}, fmt.Errorf("converting %v to major units: %w", amount, err)
	}
	return v, nil
}

func minorToMajor(amount any, places int, rt ReturnType) (Value, error) {
	if !rt.valid() {
		return Value{}, fmt.Errorf("%w: unknown return type %v", ErrInvalidType, rt)
	}
	if places < 0 {
		return Value{}, fmt.Errorf("%w: got %v", ErrInvalidDecimalPlaces, places)
	}
	op, err := newOperand(amount)
	if err != nil {
		return Value{}, err
	}
	if !allZeros(op.frac) {
		return Value{}, ErrNotWholeNumber
	}

	// Magnitude split
	q, r := new(big.Int).QuoRem(op.whole, pow10(places), new(big.Int))
	neg := op.neg && op.whole.Sign() != 0

	switch rt {
	case BigInt:
		if r.Sign() != 0 {
			return Value{}, ErrFractionalBigIntLoss
		}
		if neg {
			q.Neg(q)
		}
		return newBigIntValue(q), nil
	}

	s := formatMajor(neg, q, r, places)
	switch rt {
	case String:
		return newStringValue(s), nil
	case Decimal:
		return parseDecimalValue(s)
	default:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v is out of float64 range", ErrIntegerOverflow, s)
		}
		return newNumberValue(f), nil
	}
}

// MajorToMinor converts an amount of major units (e.g. bitcoins) to minor
// units (e.g. satoshis), where one major unit equals 10^places minor units.
// The amount must be one of the types accepted by [IsNumber], [IsString],
// [IsBigInt] or a [decimal.Decimal].
//
// Integers, big integers, strings and decimals are converted exactly.
// Floats are converted using their shortest decimal representation, rounded
// to places fractional digits using rounding half away from zero.
// Negative zero is converted to non-negative zero.
//
// MajorToMinor returns an error if:
//   - the amount has an unsupported type or is NaN or Inf;
//   - places is negative;
//   - a string or decimal amount has non-zero digits beyond places
//     fractional digits;
//   - rt is Number and the magnitude of the result exceeds 2^53 - 1;
//   - rt is Decimal and the result does not fit into a [decimal.Decimal].
func MajorToMinor(amount any, places int, rt ReturnType) (Value, error) {
	v, err := majorToMinor(amount, places, rt)
	if err != nil {
		return Value{}, fmt.Errorf("converting %v to minor units: %w", amount, err)
	}
	return v, nil
}

func majorToMinor(amount any, places int, rt ReturnType) (Value, error) {
	if !rt.valid() {
		return Value{}, fmt.Errorf("%w: unknown return type %v", ErrInvalidType, rt)
	}
	if places < 0 {
		return Value{}, fmt.Errorf("%w: got %v", ErrInvalidDecimalPlaces, places)
	}
	op, err := newOperand(amount)
	if err != nil {
		return Value{}, err
	}
	m, err := op.scaleUp(places)
	if err != nil {
		return Value{}, err
	}
	if op.neg {
		m.Neg(m)
	}

	switch rt {
	case BigInt:
		return newBigIntValue(m), nil
	case String:
		return newStringValue(m.String()), nil
	case Decimal:
		return parseDecimalValue(m.String())
	default:
		if m.CmpAbs(maxSafeInt) > 0 {
			return Value{}, ErrIntegerOverflow
		}
		return newNumberValue(float64(m.Int64())), nil
	}
}

// ToBaseUnit is like [MajorToMinor] with places fixed to [SatoshiPlaces].
func ToBaseUnit(amount any, rt ReturnType) (Value, error) {
	return MajorToMinor(amount, SatoshiPlaces, rt)
}

// FromBaseUnit is like [MinorToMajor] with places fixed to [SatoshiPlaces].
func FromBaseUnit(amount any, rt ReturnType) (Value, error) {
	return MinorToMajor(amount, SatoshiPlaces, rt)
}

// formatMajor renders a major unit amount from its integer part q and its
// fractional part r, which is zero-padded to places digits.
func formatMajor(neg bool, q, r *big.Int, places int) string {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(q.String())
	if places > 0 {
		frac := r.String()
		b.Grow(places + 1)
		b.WriteByte('.')
		for range places - len(frac) {
			b.WriteByte('0')
		}
		b.WriteString(frac)
	}
	return b.String()
}

// parseDecimalValue converts the string s to a decimal value and checks that
// no digits were rounded away.
func parseDecimalValue(s string) (Value, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrDecimalOverflow, err)
	}
	if d.String() != s {
		return Value{}, fmt.Errorf("%w: %v would be rounded to %v", ErrDecimalOverflow, s, d)
	}
	return newDecimalValue(d), nil
}
