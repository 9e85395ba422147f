package price

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparseable means the raw field carried no usable numeric price.
// Callers keep the row but must treat its price as non-authoritative.
var ErrUnparseable = errors.New("price: no numeric value found")

var (
	// multi-buy requires the currency marker on the total ("2/$5", "3 for $10")
	// so that per-weight strings like "99¢/100g" fall through to token extraction
	multiBuyRe = regexp.MustCompile(`^\s*(\d+)\s*(?:/|for)\s*\$\s*(\d+(?:\.\d+)?)`)
	numberRe   = regexp.MustCompile(`[-+]?(?:\d*\.\d+|\d+)`)
)

// Parse extracts a unit price from a raw flyer price string.
// It returns the display text (trimmed original) and the numeric value.
func Parse(raw string) (string, float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return raw, 0, ErrUnparseable
	}

	lower := strings.ToLower(text)
	if m := multiBuyRe.FindStringSubmatch(lower); m != nil {
		qty, _ := strconv.ParseFloat(m[1], 64)
		total, _ := strconv.ParseFloat(m[2], 64)
		if qty <= 0 {
			return text, 0, ErrUnparseable
		}
		return text, total / qty, nil
	}

	clean := strings.ReplaceAll(lower, "$", "")
	clean = strings.ReplaceAll(clean, " ", "")

	loc := numberRe.FindStringIndex(clean)
	if loc == nil {
		return text, 0, ErrUnparseable
	}
	tok := clean[loc[0]:loc[1]]
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return text, 0, ErrUnparseable
	}

	// cent-denominated whole numbers: "99¢" is 0.99, not 99
	if !strings.Contains(tok, ".") && strings.HasPrefix(clean[loc[1]:], "¢") {
		v /= 100
	}

	return text, v, nil
}

// FromField handles raw price fields that arrive as either text or numbers.
func FromField(field any) (string, float64, error) {
	switch t := field.(type) {
	case nil:
		return "", 0, ErrUnparseable
	case string:
		return Parse(t)
	case json.Number:
		return Parse(t.String())
	case float64:
		return Parse(strconv.FormatFloat(t, 'f', -1, 64))
	case int:
		return Parse(strconv.Itoa(t))
	default:
		return "", 0, ErrUnparseable
	}
}

// FormatText rewrites bare numeric price text as "$x.xx" for display.
// Text that already carries units or offer wording is left alone.
func FormatText(text string, value float64) string {
	if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		return "$" + strconv.FormatFloat(value, 'f', 2, 64)
	}
	return text
}
