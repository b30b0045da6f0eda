package usecase

import "fmt"

// Tax rates in whole percent, keyed by tax classification code:
// "10" standard, "08" reduced, "00" exempt.
var taxRatePercent = map[string]int{
	"10": 10,
	"08": 8,
	"00": 0,
}

// calcLineAmounts computes a line's tax-exclusive subtotal, tax amount and
// tax-inclusive subtotal. The tax is floored; integer arithmetic keeps the
// flooring exact.
func calcLineAmounts(price, qty int, taxCd string) (exTax, tax, total int, err error) {
	rate, ok := taxRatePercent[taxCd]
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid tax classification: %q", taxCd)
	}

	exTax = price * qty
	tax = exTax * rate / 100
	total = exTax + tax
	return exTax, tax, total, nil
}
