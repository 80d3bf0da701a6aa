package shared

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a monetary amount with thousands grouping and two
// decimals, e.g. 1250.5 -> "1,250.50".
func FormatAmount(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// FormatQuantity renders an integer quantity with thousands grouping.
func FormatQuantity(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}
