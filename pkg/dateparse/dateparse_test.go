package dateparse_test

import (
	"testing"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/dateparse"
)

func TestNewParser(t *testing.T) {
	t.Run("Invalid Timezone", func(t *testing.T) {
		if _, err := dateparse.NewParser("Not/AZone"); err == nil {
			t.Errorf("expected error for unknown timezone")
		}
	})
}

func TestParseDate(t *testing.T) {
	p, err := dateparse.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Future Date", func(t *testing.T) {
		got, err := p.ParseDate("2026-10-20", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Year() != 2026 || got.Month() != time.October || got.Day() != 20 {
			t.Errorf("unexpected parsed date %v", got)
		}
	})

	t.Run("Same Day Is Allowed", func(t *testing.T) {
		if _, err := p.ParseDate("2026-09-01", now); err != nil {
			t.Errorf("same-day booking should pass, got %v", err)
		}
	})

	t.Run("Past Date Rejected", func(t *testing.T) {
		if _, err := p.ParseDate("2026-08-31", now); err == nil {
			t.Errorf("expected past-date error")
		}
	})

	t.Run("Wrong Format Rejected", func(t *testing.T) {
		for _, v := range []string{"20/10/2026", "2026-13-01", "tomorrow", ""} {
			if _, err := p.ParseDate(v, now); err == nil {
				t.Errorf("expected error for %q", v)
			}
		}
	})

	t.Run("Whitespace Trimmed", func(t *testing.T) {
		if _, err := p.ParseDate("  2026-10-20  ", now); err != nil {
			t.Errorf("expected trimmed input to parse, got %v", err)
		}
	})
}

func TestNormalizeTime(t *testing.T) {
	p, err := dateparse.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}

	t.Run("Zero Pads Hour", func(t *testing.T) {
		got, err := p.NormalizeTime("9:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "09:30" {
			t.Errorf("expected 09:30, got %q", got)
		}
	})

	t.Run("Already Normalized", func(t *testing.T) {
		got, err := p.NormalizeTime("14:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "14:00" {
			t.Errorf("expected 14:00, got %q", got)
		}
	})

	t.Run("Invalid Values Rejected", func(t *testing.T) {
		for _, v := range []string{"24:00", "12:60", "noon", "1230", ""} {
			if _, err := p.NormalizeTime(v); err == nil {
				t.Errorf("expected error for %q", v)
			}
		}
	})
}
