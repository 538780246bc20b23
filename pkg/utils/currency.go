package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formata um valor em centavos como dólar americano (ex: $1,234.56)
func FormatCurrency(cents int64) string {
	amount := decimal.New(cents, -2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	integer, fraction, _ := strings.Cut(fixed, ".")

	return sign + "$" + groupThousands(integer) + "." + fraction
}

// CentsToDollars converte centavos para dólares
func CentsToDollars(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
