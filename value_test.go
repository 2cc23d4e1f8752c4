package units

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
)

func TestValue_ZeroValue(t *testing.T) {
	got := Value{}
	if got.Kind() != Number {
		t.Errorf("Value{}.Kind() = %v, want %v", got.Kind(), Number)
	}
	if f, ok := got.Float64(); !ok || f != 0 {
		t.Errorf("Value{}.Float64() = [%v %v], want [0 true]", f, ok)
	}
	if got.String() != "0" {
		t.Errorf("Value{}.String() = %q, want %q", got, "0")
	}
}

func TestValue_Interfaces(t *testing.T) {
	var i any = Value{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	_, ok = i.(json.Marshaler)
	if !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
}

func TestValue_Accessors(t *testing.T) {
	num := newNumberValue(1.5)
	str := newStringValue("1.50")
	bint := newBigIntValue(big.NewInt(150))
	dec := newDecimalValue(decimal.MustParse("1.50"))

	if _, ok := str.Float64(); ok {
		t.Errorf("%q.Float64() did not fail", str)
	}
	if _, ok := num.BigInt(); ok {
		t.Errorf("%q.BigInt() did not fail", num)
	}
	if _, ok := bint.Decimal(); ok {
		t.Errorf("%q.Decimal() did not fail", bint)
	}
	if d, ok := dec.Decimal(); !ok || d.String() != "1.50" {
		t.Errorf("%q.Decimal() = [%v %v], want [1.50 true]", dec, d, ok)
	}

	// BigInt must not expose the internal integer
	x, _ := bint.BigInt()
	x.SetInt64(0)
	if bint.String() != "150" {
		t.Errorf("modifying the result of BigInt() changed the value to %q", bint)
	}
}

func TestValue_Int64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    Value
			want int64
		}{
			{newNumberValue(0), 0},
			{newNumberValue(-9007199254740991), -9007199254740991},
			{newNumberValue(math.MinInt64), math.MinInt64},
			{newStringValue("-12.000"), -12},
			{newStringValue("9223372036854775807"), math.MaxInt64},
			{newBigIntValue(big.NewInt(math.MinInt64)), math.MinInt64},
			{newDecimalValue(decimal.MustParse("-5.00")), -5},
		}
		for _, tt := range tests {
			got, ok := tt.v.Int64()
			if !ok {
				t.Errorf("%q.Int64() failed", tt.v)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Int64() = %v, want %v", tt.v, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]Value{
			"fraction 1": newNumberValue(0.5),
			"fraction 2": newStringValue("0.00000001"),
			"fraction 3": newDecimalValue(decimal.MustParse("1.5")),
			"overflow 1": newNumberValue(math.MaxInt64),
			"overflow 2": newNumberValue(1e300),
			"overflow 3": newStringValue("9223372036854775808"),
			"overflow 4": newBigIntValue(mustParseBigInt("-9223372036854775809")),
		}
		for name, v := range tests {
			t.Run(name, func(t *testing.T) {
				_, ok := v.Int64()
				if ok {
					t.Errorf("%q.Int64() did not fail", v)
				}
			})
		}
	})
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{newNumberValue(0.00000046), "0.00000046"},
		{newNumberValue(-420000000000000), "-420000000000000"},
		{newNumberValue(1e21), "1000000000000000000000"},
		{newStringValue("-0.00000001"), "-0.00000001"},
		{newBigIntValue(mustParseBigInt("42000000000000123400")), "42000000000000123400"},
		{newDecimalValue(decimal.MustParse("1.23000000")), "1.23000000"},
	}
	for _, tt := range tests {
		got := tt.v.String()
		if got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.v.Kind(), got, tt.want)
		}
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{newNumberValue(1), `1`},
		{newNumberValue(-0.5), `-0.5`},
		{newStringValue("420000000000000.000000"), `"420000000000000.000000"`},
		{newBigIntValue(mustParseBigInt("42000000000000123400")), `42000000000000123400`},
		{newDecimalValue(decimal.MustParse("-0.05")), `"-0.05"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.v)
		if err != nil {
			t.Errorf("json.Marshal(%q) failed: %v", tt.v, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("json.Marshal(%q) = %s, want %s", tt.v, got, tt.want)
		}
	}
}
