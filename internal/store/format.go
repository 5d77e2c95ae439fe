package store

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders a rupee amount with Indian digit grouping, e.g.
// 123456 -> "₹1,23,456". Pure function, no side effects.
func FormatPrice(price int) string {
	return inrPrinter.Sprintf("₹%d", price)
}
