package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/cerebellumbot/walletpay/types"
)

// IsValidAddress validates recipient address format for a chain family.
// Pure and total: any malformed input returns false, never an error.
//
// EVM addresses are checked with go-ethereum's standard address grammar
// (20-byte hex, optional 0x prefix, optional mixed-case checksum). Tron
// validation is syntactic only — exactly 34 characters starting with "T".
// Base58check digests are not verified, so some invalid Tron addresses
// are accepted.
func IsValidAddress(family types.ChainFamily, address string) bool {
	switch family {
	case types.ChainEVM:
		return common.IsHexAddress(address)
	case types.ChainTron:
		return len(address) == 34 && strings.HasPrefix(address, "T")
	default:
		return false
	}
}

// ValidateAmount parses a human-readable payment amount. The amount must
// be a positive decimal.
func ValidateAmount(amount string) (decimal.Decimal, error) {
	if amount == "" {
		return decimal.Zero, fmt.Errorf("amount cannot be empty")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %w", err)
	}

	if !dec.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive")
	}

	return dec, nil
}

// ToBaseUnits converts a human amount to the integer base unit of an
// asset with the given number of decimals. Excess precision is truncated,
// never rounded up.
func ToBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Truncate(0).BigInt()
}

// FormatUnits renders an integer base-unit value as a human decimal
// string with a fixed number of fractional places.
func FormatUnits(value *big.Int, decimals int32, places int32) string {
	return decimal.NewFromBigInt(value, -decimals).StringFixed(places)
}
