package usecase

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const NotAvailable = "N/A"

// FormatNumber renders v with thousands separators and at most two decimals.
// Values below one keep up to six decimals so that small prices stay visible.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}

	places := int32(2)
	if math.Abs(v) < 1 {
		places = 6
	}
	d := decimal.NewFromFloat(v).Round(places)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole, frac, _ := strings.Cut(d.String(), ".")
	if frac != "" {
		frac = "." + frac
	}
	return sign + groupThousands(whole) + frac
}

// groupThousands inserts commas into a string of decimal digits. It works on
// the text so values beyond int64 group correctly.
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

// FormatMoney renders v in currency. USD gets a dollar sign, anything else a
// currency code suffix.
func FormatMoney(v float64, currency string) string {
	s := FormatNumber(v)
	if s == NotAvailable {
		return s
	}
	if currency == "" || strings.EqualFold(currency, "usd") {
		if strings.HasPrefix(s, "-") {
			return "-$" + s[1:]
		}
		return "$" + s
	}
	return s + " " + strings.ToUpper(currency)
}

// FormatFixed2 rounds v to exactly two decimals.
func FormatFixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatPercent renders a percentage to two decimals.
func FormatPercent(v float64) string {
	return FormatFixed2(v) + "%"
}

// FormatDate renders an RFC 3339 timestamp as a calendar date.
func FormatDate(raw string) string {
	if raw == "" {
		return NotAvailable
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return NotAvailable
	}
	return t.UTC().Format("Jan 2, 2006")
}
