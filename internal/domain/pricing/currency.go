// Package pricing holds the pure calculation core of the budget workflow:
// monetary parsing, price aggregation, quota splits, amendment derivation and
// the recompute pass that keeps a document's derived fields consistent.
package pricing

import (
	"strconv"
	"strings"
)

// ParseCurrency turns a pt-BR monetary string into a value. It tolerates a
// currency symbol and thousands separators ("R$ 1.234,56" -> 1234.56) and
// reports ok=false for empty or unparseable input. Callers treat a failed
// parse as "no observation", not as an error.
func ParseCurrency(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	// Dots are thousands separators, the first comma is the decimal mark.
	// A second comma survives and fails strconv, which is the intended
	// outcome for garbage like "1,2,3".
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatCurrency renders a value the way the document displays it: thousands
// separated by "." and exactly two decimals after ",". No currency symbol.
func FormatCurrency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
