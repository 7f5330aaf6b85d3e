package usecase

import (
	"math/big"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

// missingValue is what an absent optional field renders as in comparisons.
const missingValue = "—"

var currencySymbols = map[domain.Currency]string{
	domain.CurrencyTRY: "₺",
	domain.CurrencyUSD: "$",
	domain.CurrencyEUR: "€",
}

var pricePrinter = message.NewPrinter(language.Turkish)

// FormatPrice renders a price with its currency symbol and locale-aware
// digit grouping, e.g. ₺1.250.000. Formatting works on the decimal
// coefficient and exponent directly, so no precision is lost on values a
// float64 cannot represent.
func FormatPrice(price primitive.Decimal128, cur domain.Currency) string {
	symbol, ok := currencySymbols[cur]
	if !ok {
		symbol = string(cur) + " "
	}

	coeff, exp, err := price.BigInt()
	if err != nil {
		return symbol + price.String()
	}
	if coeff.Sign() == 0 {
		return symbol + "0"
	}

	digits := new(big.Int).Abs(coeff).String()
	var intPart, fracPart string
	switch {
	case exp >= 0:
		intPart = digits + strings.Repeat("0", exp)
	case -exp >= len(digits):
		intPart = "0"
		fracPart = strings.Repeat("0", -exp-len(digits)) + digits
	default:
		intPart = digits[:len(digits)+exp]
		fracPart = digits[len(digits)+exp:]
	}
	fracPart = strings.TrimRight(fracPart, "0")

	var b strings.Builder
	b.WriteString(symbol)
	if coeff.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(groupDigits(intPart))
	if fracPart != "" {
		b.WriteString(",")
		b.WriteString(fracPart)
	}
	return b.String()
}

// groupDigits applies the locale's thousands grouping to a plain digit
// string. Values beyond int64 are grouped by hand with the same separator.
func groupDigits(digits string) string {
	if v, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return pricePrinter.Sprint(number.Decimal(v))
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
