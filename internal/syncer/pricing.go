package syncer

import (
	"strconv"
	"strings"
)

// NormalizePrice converts a locale-formatted price string into a plain digit
// string of whole currency units. Everything after the first decimal point is
// dropped, then every non-digit rune is removed.
//
//	NormalizePrice("19'990.00 руб.") == "19990"
//	NormalizePrice("no digits")      == ""
func NormalizePrice(price string) string {
	head, _, _ := strings.Cut(price, ".")
	var b strings.Builder
	for _, r := range head {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmount normalizes a price string and parses it as whole currency
// units. A price that normalizes to the empty string is a data-quality error;
// marketplaces reject empty price fields, so it must never be coerced to 0.
func ParseAmount(price string) (int64, error) {
	digits := NormalizePrice(price)
	if digits == "" {
		return 0, &DataIntegrityError{Field: "price", Reason: "contains no digits: " + strconv.Quote(price)}
	}
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, &DataIntegrityError{Field: "price", Reason: "not a valid amount: " + strconv.Quote(price)}
	}
	return amount, nil
}
