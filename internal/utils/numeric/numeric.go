package numeric

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
)

// DecNumber matches an unsigned decimal integer literal.
const DecNumber = `[0-9]+`

// IntBits is the width of the language's int type.
const IntBits = 64

// ErrOutOfRange is returned for literals that do not fit in IntBits.
var ErrOutOfRange = errors.New("integer literal out of range")

var decimalRegex = regexp.MustCompile(`^` + DecNumber + `$`)

// IsDecimal reports whether s is a well-formed decimal literal.
func IsDecimal(s string) bool {
	return decimalRegex.MatchString(s)
}

// StringToBigInt parses a decimal literal without a size limit.
func StringToBigInt(s string) (*big.Int, error) {
	if !IsDecimal(s) {
		return nil, fmt.Errorf("invalid integer literal: %s", s)
	}
	result, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer literal: %s", s)
	}
	return result, nil
}

// StringToInteger parses a decimal literal into an int.
func StringToInteger(s string) (int64, error) {
	value, err := StringToBigInt(s)
	if err != nil {
		return 0, err
	}
	if !FitsInBitSize(value, IntBits, true) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	return value.Int64(), nil
}

// StringToNegatedInteger parses a decimal literal and negates it, so the
// magnitude of the most negative int is accepted.
func StringToNegatedInteger(s string) (int64, error) {
	value, err := StringToBigInt(s)
	if err != nil {
		return 0, err
	}
	value.Neg(value)
	if !FitsInBitSize(value, IntBits, true) {
		return 0, fmt.Errorf("%w: -%s", ErrOutOfRange, s)
	}
	return value.Int64(), nil
}

// FitsInBitSize checks if a big.Int value fits in the given bit size (signed or unsigned)
func FitsInBitSize(value *big.Int, bitSize int, signed bool) bool {
	if signed {
		// -2^(bitSize-1) to 2^(bitSize-1) - 1
		min := new(big.Int).Lsh(big.NewInt(-1), uint(bitSize-1))
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitSize-1)), big.NewInt(1))
		return value.Cmp(min) >= 0 && value.Cmp(max) <= 0
	}
	if value.Sign() < 0 {
		return false
	}
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitSize)), big.NewInt(1))
	return value.Cmp(max) <= 0
}
