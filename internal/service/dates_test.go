package service

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeEntryDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "canonical passes through", in: "2025-02-03", want: "2025-02-03"},
		{name: "rfc3339 timestamp truncated", in: "2025-02-03T14:30:00Z", want: "2025-02-03"},
		{name: "sql datetime truncated", in: "2025-02-03 14:30:00", want: "2025-02-03"},
		{name: "surrounding whitespace", in: "  2025-02-03  ", want: "2025-02-03"},
		{name: "garbage rejected", in: "03/02/2025", wantErr: true},
		{name: "partial date rejected", in: "2025-02", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEntryDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeEntryDate_BlankMeansToday(t *testing.T) {
	got, err := NormalizeEntryDate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != time.Now().UTC().Format(DateLayout) {
		t.Fatalf("expected today's date, got %q", got)
	}
}

func TestNormalizeEntryDate_Idempotent(t *testing.T) {
	once, err := NormalizeEntryDate("2025-02-03T10:00:00Z")
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	twice, err := NormalizeEntryDate(once)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if once != twice {
		t.Fatalf("normalization not idempotent: %q vs %q", once, twice)
	}
}
