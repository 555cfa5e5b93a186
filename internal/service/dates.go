package service

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical entry-date form stored and compared everywhere.
const DateLayout = "2006-01-02"

// entryDateLayouts are the accepted input forms, tried in order. The first
// one makes normalization idempotent: a canonical date passes through as-is.
var entryDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// NormalizeEntryDate reduces a raw date string to canonical YYYY-MM-DD.
// A blank input means "today" (UTC). Unparseable input is a validation error.
func NormalizeEntryDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().UTC().Format(DateLayout), nil
	}

	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: unrecognized date %q", ErrValidation, raw)
}
