package schema

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fixed-point columns are numeric(18,2): at most 2 fractional digits and 18
// significant digits, so the integer part must stay below 10^16.
var maxNumericAbs = decimal.New(1, 16)

// CheckNumeric rejects values the numeric(18,2) columns cannot hold exactly.
// The write is refused rather than rounded; callers pre-validate or surface
// the error.
func CheckNumeric(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(2)) {
		return fmt.Errorf("%s: more than 2 fractional digits in %s", field, d)
	}
	if d.Abs().GreaterThanOrEqual(maxNumericAbs) {
		return fmt.Errorf("%s: %s exceeds numeric(18,2)", field, d)
	}
	return nil
}

// CheckNumericPtr is CheckNumeric for optional fields; nil passes.
func CheckNumericPtr(field string, d *decimal.Decimal) error {
	if d == nil {
		return nil
	}
	return CheckNumeric(field, *d)
}
