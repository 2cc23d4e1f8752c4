package units

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/token/codegen.go

// Token type represents a well-known token and its number of decimal places.
// The zero value is [XXX], which indicates an unknown token without minor units.
//
// Token is implemented as an integer index into an in-memory array that
// stores the code and the decimal places of every token.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Token value.
//
// When persisting a token value, use the code returned by the [Token.Code]
// method, rather than the integer index, as mapping between index and
// a particular token may change in future versions.
type Token uint8

var ErrInvalidToken = errors.New("invalid token")

// ParseToken converts a string to token.
// The input string must be in one of the following formats:
//
//	BTC
//	btc
//
// ParseToken returns an error if the string does not represent a known token code.
func ParseToken(code string) (Token, error) {
	t, ok := tokenLookup[code]
	if !ok {
		return XXX, fmt.Errorf("%w: %q", ErrInvalidToken, code)
	}
	return t, nil
}

// MustParseToken is like [ParseToken] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding tokens.
func MustParseToken(code string) Token {
	t, err := ParseToken(code)
	if err != nil {
		panic(fmt.Sprintf("ParseToken(%q) failed: %v", code, err))
	}
	return t
}

// Code returns the ticker symbol of the token, such as "BTC".
// This method always returns a valid code.
func (t Token) Code() string {
	return codeLookup[t]
}

// Name returns the human-readable name of the token, such as "Bitcoin".
func (t Token) Name() string {
	return nameLookup[t]
}

// Decimals returns the number of digits after the decimal point required for
// representing the minor unit of a token.
// For example, the minor unit of [BTC], 1 satoshi, is represented as
// 0.00000001 bitcoins, so its number of decimal places is 8.
func (t Token) Decimals() int {
	return int(decimalsLookup[t])
}

// ToMinor is like [MajorToMinor] with places equal to [Token.Decimals].
func (t Token) ToMinor(amount any, rt ReturnType) (Value, error) {
	return MajorToMinor(amount, t.Decimals(), rt)
}

// ToMajor is like [MinorToMajor] with places equal to [Token.Decimals].
func (t Token) ToMajor(amount any, rt ReturnType) (Value, error) {
	return MinorToMajor(amount, t.Decimals(), rt)
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the token.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Token) String() string {
	return t.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseToken].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (t *Token) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*t, err = ParseToken(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Token.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (t Token) MarshalJSON() ([]byte, error) {
	code := t.Code()
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseToken].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (t *Token) UnmarshalText(text []byte) error {
	var err error
	*t, err = ParseToken(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Token.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.Code()), nil
}
