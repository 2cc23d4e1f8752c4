package units

import (
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

// Value is the result of a conversion.
// It holds exactly one representation, selected by the [ReturnType] passed to
// the conversion function and reported by [Value.Kind].
// Its zero value is the number 0.
// Value is designed to be safe for concurrent use by multiple goroutines.
type Value struct {
	kind ReturnType
	num  float64         // Number
	text string          // String
	bint *big.Int        // BigInt
	dec  decimal.Decimal // Decimal
}

func newNumberValue(f float64) Value {
	return Value{kind: Number, num: f}
}

func newStringValue(s string) Value {
	return Value{kind: String, text: s}
}

// newBigIntValue takes ownership of x.
func newBigIntValue(x *big.Int) Value {
	return Value{kind: BigInt, bint: x}
}

func newDecimalValue(d decimal.Decimal) Value {
	return Value{kind: Decimal, dec: d}
}

// Kind returns the representation held by the value.
func (v Value) Kind() ReturnType {
	return v.kind
}

// Float64 returns the float held by a [Number] value.
// For other kinds, false is returned.
func (v Value) Float64() (f float64, ok bool) {
	if v.kind != Number {
		return 0, false
	}
	return v.num, true
}

// BigInt returns a copy of the integer held by a [BigInt] value.
// For other kinds, false is returned.
func (v Value) BigInt() (x *big.Int, ok bool) {
	if v.kind != BigInt {
		return nil, false
	}
	return new(big.Int).Set(v.bint), true
}

// Decimal returns the decimal held by a [Decimal] value.
// For other kinds, false is returned.
func (v Value) Decimal() (d decimal.Decimal, ok bool) {
	if v.kind != Decimal {
		return decimal.Decimal{}, false
	}
	return v.dec, true
}

// Int64 returns the value as an int64.
// If the value is not an integer or cannot be represented as an int64,
// then false is returned.
func (v Value) Int64() (i int64, ok bool) {
	switch v.kind {
	case Number:
		if v.num != math.Trunc(v.num) || v.num < math.MinInt64 || v.num >= math.MaxInt64 {
			return 0, false
		}
		return int64(v.num), true
	case BigInt:
		if !v.bint.IsInt64() {
			return 0, false
		}
		return v.bint.Int64(), true
	case Decimal:
		if !v.dec.IsInt() {
			return 0, false
		}
		whole, _, ok := v.dec.Int64(0)
		return whole, ok
	default:
		op, err := parseOperand(v.text)
		if err != nil || !allZeros(op.frac) {
			return 0, false
		}
		if op.neg {
			op.whole.Neg(op.whole)
		}
		if !op.whole.IsInt64() {
			return 0, false
		}
		return op.whole.Int64(), true
	}
}

// String implements the [fmt.Stringer] interface and returns a decimal
// representation of the value, regardless of its kind.
// Numbers are formatted without exponent, using the smallest number of digits
// necessary to represent the float exactly.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value) String() string {
	switch v.kind {
	case String:
		return v.text
	case BigInt:
		return v.bint.String()
	case Decimal:
		return v.dec.String()
	default:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
}

// MarshalJSON implements the [json.Marshaler] interface.
// Number and BigInt values are encoded as JSON numbers,
// String and Decimal values are encoded as JSON strings.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	s := v.String()
	text := make([]byte, 0, len(s)+2)
	switch v.kind {
	case String, Decimal:
		text = append(text, '"')
		text = append(text, s...)
		text = append(text, '"')
	default:
		text = append(text, s...)
	}
	return text, nil
}
