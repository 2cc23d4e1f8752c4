package units

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

var bigOne = big.NewInt(1)

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [39]*big.Int {
	var p [39]*big.Int
	p[0] = big.NewInt(1)
	for i := 1; i < len(p); i++ {
		p[i] = new(big.Int).Mul(p[i-1], big.NewInt(10))
	}
	return p
}()

// pow10 returns 10^n.
// The result must not be modified.
func pow10(n int) *big.Int {
	if n < len(bpow10) {
		return bpow10[n]
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// operand is an amount split into its sign and its unsigned magnitude.
// The sign is kept apart so that the magnitude arithmetic never has to deal
// with negative numbers.
type operand struct {
	neg    bool     // amount < 0, or amount is a negative zero
	whole  *big.Int // integer part, always non-negative
	frac   string   // fractional digits, possibly empty
	approx bool     // amount is a binary float
}

// newOperand converts any of the supported amount types to an operand.
func newOperand(amount any) (operand, error) {
	switch a := amount.(type) {
	case string:
		return parseOperand(a)
	case float64:
		return newFloatOperand(a, 64)
	case float32:
		return newFloatOperand(float64(a), 32)
	case int:
		return newIntOperand(new(big.Int).SetInt64(int64(a))), nil
	case int8:
		return newIntOperand(new(big.Int).SetInt64(int64(a))), nil
	case int16:
		return newIntOperand(new(big.Int).SetInt64(int64(a))), nil
	case int32:
		return newIntOperand(new(big.Int).SetInt64(int64(a))), nil
	case int64:
		return newIntOperand(new(big.Int).SetInt64(a)), nil
	case uint:
		return newIntOperand(new(big.Int).SetUint64(uint64(a))), nil
	case uint8:
		return newIntOperand(new(big.Int).SetUint64(uint64(a))), nil
	case uint16:
		return newIntOperand(new(big.Int).SetUint64(uint64(a))), nil
	case uint32:
		return newIntOperand(new(big.Int).SetUint64(uint64(a))), nil
	case uint64:
		return newIntOperand(new(big.Int).SetUint64(a)), nil
	case *big.Int:
		if a == nil {
			return operand{}, fmt.Errorf("%w: got nil %T", ErrInvalidType, a)
		}
		return newIntOperand(new(big.Int).Set(a)), nil
	case big.Int:
		return newIntOperand(new(big.Int).Set(&a)), nil
	case decimal.Decimal:
		return parseOperand(a.String())
	default:
		return operand{}, fmt.Errorf("%w: got %T", ErrInvalidType, amount)
	}
}

// newIntOperand takes ownership of x.
func newIntOperand(x *big.Int) operand {
	neg := x.Sign() < 0
	return operand{neg: neg, whole: x.Abs(x)}
}

// newFloatOperand converts a float using the shortest decimal representation
// that round-trips to the same float of the given bit size.
func newFloatOperand(f float64, bitSize int) (operand, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return operand{}, fmt.Errorf("%w: special value %v", ErrInvalidType, f)
	}
	s := strconv.FormatFloat(math.Abs(f), 'f', -1, bitSize)
	op, err := parseOperand(s)
	if err != nil {
		return operand{}, err
	}
	op.neg = math.Signbit(f)
	op.approx = true
	return op, nil
}

// parseOperand parses a decimal string in the following format:
//
//	[sign] digits [ "." [digits] ]
//	[sign] "." digits
//
// where sign is "+" or "-".
func parseOperand(s string) (operand, error) {
	var op operand
	pos := 0

	// Sign
	if pos < len(s) {
		switch s[pos] {
		case '-':
			op.neg = true
			pos++
		case '+':
			pos++
		}
	}

	// Integer digits
	start := pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	whole := s[start:pos]

	// Fractional digits
	if pos < len(s) && s[pos] == '.' {
		pos++
		start = pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		op.frac = s[start:pos]
	}

	if pos != len(s) || len(whole)+len(op.frac) == 0 {
		return operand{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	op.whole = new(big.Int)
	if whole != "" {
		op.whole.SetString(whole, 10)
	}
	return op, nil
}

// scaleUp returns the magnitude of the operand multiplied by 10^places.
// Fractional digits beyond places are rounded half away from zero if the
// operand is approximate, and must be zeros otherwise.
func (op operand) scaleUp(places int) (*big.Int, error) {
	frac, excess := op.frac, ""
	if len(frac) > places {
		frac, excess = frac[:places], frac[places:]
	}
	roundUp := false
	if !allZeros(excess) {
		if !op.approx {
			return nil, fmt.Errorf("%w: %v > %v", ErrPrecisionLoss, len(op.frac), places)
		}
		roundUp = excess[0] >= '5'
	}

	m := new(big.Int).Mul(op.whole, pow10(places))
	if frac != "" {
		f, _ := new(big.Int).SetString(frac, 10)
		m.Add(m, f.Mul(f, pow10(places-len(frac))))
	}
	if roundUp {
		m.Add(m, bigOne)
	}
	return m, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// allZeros reports whether s consists of '0' characters only.
func allZeros(s string) bool {
	for i := range len(s) {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
