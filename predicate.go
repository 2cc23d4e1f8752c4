package units

import "math/big"

// IsString returns true if every argument is a string.
// It returns true if there are no arguments.
func IsString(args ...any) bool {
	for _, a := range args {
		if _, ok := a.(string); !ok {
			return false
		}
	}
	return true
}

// IsNumber returns true if every argument is a float or a built-in integer.
// It returns true if there are no arguments.
func IsNumber(args ...any) bool {
	for _, a := range args {
		switch a.(type) {
		case float64, float32,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64:
		default:
			return false
		}
	}
	return true
}

// IsBigInt returns true if every argument is a non-nil *big.Int or a big.Int.
// It returns true if there are no arguments.
func IsBigInt(args ...any) bool {
	for _, a := range args {
		switch a := a.(type) {
		case *big.Int:
			if a == nil {
				return false
			}
		case big.Int:
		default:
			return false
		}
	}
	return true
}
