// Copyright (C) 2022 Creditor Corp. Group.
// See LICENSE for copying information.

package numbers

import (
	"math/big"
)

// Zero defines 0 number.
const Zero = 0

// ZeroBigInt defies 0 as *big.Int type.
var ZeroBigInt = big.NewInt(0)

// OneBigInt defies 1 as *big.Int type.
var OneBigInt = big.NewInt(1)

// MaxUInt32Value defines maximum value of uint32 type.
var MaxUInt32Value = new(big.Int).SetUint64(1<<32 - 1)

// MaxUInt64Value defines maximum value of uint64 type.
var MaxUInt64Value = new(big.Int).SetUint64(1<<64 - 1)

// MaxUInt128Value defines maximum value of uint128 type.
var MaxUInt128Value = new(big.Int).Sub(new(big.Int).Lsh(OneBigInt, 128), OneBigInt)

// IsNegative returns true if the number is less than zero.
func IsNegative(num *big.Int) bool {
	return num.Sign() < Zero
}

// IsZero returns true if the number is zero.
func IsZero(num *big.Int) bool {
	return num.Sign() == Zero
}

// IsGreater returns true is a > b.
func IsGreater(a, b *big.Int) bool {
	return a.Cmp(b) > Zero
}

// IsEqual returns true is a = b.
func IsEqual(a, b *big.Int) bool {
	return a.Cmp(b) == Zero
}

// IsLess returns true is a < b.
func IsLess(a, b *big.Int) bool {
	return a.Cmp(b) < Zero
}

// IsUint128 returns true if the number fits into [0; 2^128).
func IsUint128(num *big.Int) bool {
	return !IsNegative(num) && !IsGreater(num, MaxUInt128Value)
}

// LowUint64 returns the low 64 bits of the number, the same way as uint64(x) cast works for wider integers.
func LowUint64(num *big.Int) uint64 {
	return new(big.Int).And(num, MaxUInt64Value).Uint64()
}

// LowUint32 returns the low 32 bits of the number.
func LowUint32(num *big.Int) uint32 {
	return uint32(LowUint64(num))
}

// LowByte returns the low 8 bits of the number.
func LowByte(num *big.Int) byte {
	return byte(LowUint64(num))
}
