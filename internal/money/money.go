// Package money parses and formats the decimal-string amounts the expense
// API transmits.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a decimal-string amount to a float. Unparsable input
// yields zero, mirroring how the summary treats malformed server data.
func Parse(raw string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return n
}

// Format renders an amount with a currency symbol, two decimals and
// thousands separators: Format("$", 1234.5) == "$1,234.50".
func Format(symbol string, amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	whole, frac := parts[0], parts[1]

	var sb strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := fmt.Sprintf("%s%s.%s", symbol, sb.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}

// Total sums a list of decimal-string amounts, skipping unparsable entries.
func Total(amounts []string) float64 {
	var total float64
	for _, a := range amounts {
		total += Parse(a)
	}
	return total
}
