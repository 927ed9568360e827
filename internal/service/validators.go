package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const nationalIDLength = 11

// AmountScale is the number of decimal places balances and amounts are stored with
const AmountScale = 4

// ValidateAmount checks that amount is positive and representable at
// AmountScale without rounding.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("invalid amount: must have at most %d decimal places", AmountScale)
	}

	return nil
}

// NormalizeNationalID strips the punctuation of a formatted CPF
// ("529.982.247-25" becomes "52998224725"). Other characters are kept so
// ValidateNationalID can reject them.
func NormalizeNationalID(nationalID string) string {
	return strings.NewReplacer(".", "", "-", "", " ", "").Replace(strings.TrimSpace(nationalID))
}

// ValidateNationalID checks an unformatted CPF: eleven digits, not all equal,
// and both mod-11 check digits correct.
func ValidateNationalID(nationalID string) error {
	if len(nationalID) != nationalIDLength {
		return fmt.Errorf("invalid cpf: must have %d digits", nationalIDLength)
	}

	digits := make([]int, nationalIDLength)
	allEqual := true
	for i, r := range nationalID {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid cpf: must contain only digits")
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			allEqual = false
		}
	}

	if allEqual {
		return fmt.Errorf("invalid cpf: repeated digits")
	}

	if checkDigit(digits[:9]) != digits[9] || checkDigit(digits[:10]) != digits[10] {
		return fmt.Errorf("invalid cpf: failed check digit")
	}

	return nil
}

func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// Paging bounds the page size accepted by list operations
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// Normalize validates a zero-based page index and size, filling in the
// default size for 0 and capping it at MaxSize.
func (p Paging) Normalize(page, size int) (int, error) {
	if page < 0 {
		return 0, fmt.Errorf("invalid page: must not be negative")
	}
	if size < 0 {
		return 0, fmt.Errorf("invalid page size: must not be negative")
	}
	if size == 0 {
		size = p.DefaultSize
	}
	if p.MaxSize > 0 && size > p.MaxSize {
		size = p.MaxSize
	}
	if size > 0 && page > math.MaxInt/size {
		return 0, fmt.Errorf("invalid page: too large")
	}
	return size, nil
}
