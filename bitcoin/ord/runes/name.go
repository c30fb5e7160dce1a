// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package runes

import (
	"math/big"
	"slices"

	"github.com/cockroachdb/errors"
)

// bitsPerNameChar defines how many bits each character of the name occupies in NameToInteger.
const bitsPerNameChar = 8

// NameToInteger packs the name into an integer, character i occupies bits [8i, 8i+8).
// Letters are case-insensitive and map to 1..26, '•' and '.' map to 0,
// all other characters are skipped and take no bits.
//
// The result is not the protocol Rune value (see NewRuneFromString) and is not
// inverted by IntegerToName.
func NameToInteger(name string) (*big.Int, error) {
	var (
		result = new(big.Int)
		shift  uint
	)

	for _, char := range name {
		var value int64
		switch {
		case char >= 'A' && char <= 'Z':
			value = int64(char-'A') + 1
		case char >= 'a' && char <= 'z':
			value = int64(char-'a') + 1
		case char == DefaultSpacer || char == '.':
			value = 0
		default:
			continue
		}

		if shift >= 128 {
			return nil, errors.Newf("name %s does not fit into 128 bits", name)
		}

		result.Or(result, new(big.Int).Lsh(big.NewInt(value), shift))
		shift += bitsPerNameChar
	}

	return result, nil
}

// IntegerToName renders the integer as base-26 letters, most significant first,
// where digit d is printed as 'A'+d. Zero is rendered as "A".
func IntegerToName(value *big.Int) string {
	var (
		n     = new(big.Int).Abs(value)
		digit = new(big.Int)
		name  []byte
	)

	for {
		n.DivMod(n, base26, digit)
		name = append(name, 'A'+byte(digit.Int64()))
		if n.Sign() == 0 {
			break
		}
	}

	slices.Reverse(name)

	return string(name)
}
