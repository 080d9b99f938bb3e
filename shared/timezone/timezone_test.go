package timezone_test

import (
	"petcare/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "date only", value: "2025-06-01"},
		{name: "datetime local minutes", value: "2025-06-01T10:00"},
		{name: "datetime local seconds", value: "2025-06-01T10:00:30"},
		{name: "rfc3339", value: "2025-06-01T10:00:00Z"},
		{name: "garbage", value: "next tuesday", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseInput(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.value)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.Year() != 2025 || got.Month() != time.June || got.Day() != 1 {
				t.Errorf("unexpected date %v", got)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 6, 1, 17, 45, 12, 0, timezone.GetLocation())
	got := timezone.StartOfDay(in)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Day() != 1 {
		t.Errorf("expected midnight of the same day, got %v", got)
	}
}

func TestNewClock(t *testing.T) {
	clock := timezone.NewClock()

	if clock().IsZero() {
		t.Error("clock returned zero time")
	}
}
