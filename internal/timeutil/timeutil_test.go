package timeutil

import (
	"testing"
	"time"
)

func TestMondayOf(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			date: time.Date(2025, 6, 9, 14, 30, 0, 0, loc),
			want: time.Date(2025, 6, 9, 0, 0, 0, 0, loc),
		},
		{
			name: "wednesday maps back to monday",
			date: time.Date(2025, 6, 11, 8, 0, 0, 0, loc),
			want: time.Date(2025, 6, 9, 0, 0, 0, 0, loc),
		},
		{
			name: "saturday maps back to monday",
			date: time.Date(2025, 6, 14, 23, 59, 0, 0, loc),
			want: time.Date(2025, 6, 9, 0, 0, 0, 0, loc),
		},
		{
			name: "sunday belongs to the preceding monday",
			date: time.Date(2025, 6, 15, 12, 0, 0, 0, loc),
			want: time.Date(2025, 6, 9, 0, 0, 0, 0, loc),
		},
		{
			name: "monday across a month boundary",
			date: time.Date(2025, 8, 1, 10, 0, 0, 0, loc),
			want: time.Date(2025, 7, 28, 0, 0, 0, 0, loc),
		},
		{
			name: "sunday across a year boundary",
			date: time.Date(2023, 1, 1, 6, 0, 0, 0, loc),
			want: time.Date(2022, 12, 26, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MondayOf(tt.date); !got.Equal(tt.want) {
				t.Errorf("MondayOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSundayEndOf(t *testing.T) {
	loc := time.UTC
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, loc)

	got := SundayEndOf(monday)
	want := time.Date(2025, 6, 15, 23, 59, 59, 999_000_000, loc)
	if !got.Equal(want) {
		t.Errorf("SundayEndOf() = %v, want %v", got, want)
	}
	if got.Weekday() != time.Sunday {
		t.Errorf("SundayEndOf() weekday = %v, want Sunday", got.Weekday())
	}
}

func TestDayBounds(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	ref := time.Date(2025, 3, 9, 15, 45, 12, 0, loc) // DST transition day

	start, end := DayBounds(ref)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("DayBounds() start = %v, want midnight", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("DayBounds() end = %v, want 23:59:59", end)
	}
	if start.Day() != ref.Day() || end.Day() != ref.Day() {
		t.Errorf("DayBounds() day = %v/%v, want %v", start.Day(), end.Day(), ref.Day())
	}
}

func TestSameDay(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same instant",
			a:    time.Date(2025, 6, 9, 12, 0, 0, 0, loc),
			b:    time.Date(2025, 6, 9, 12, 0, 0, 0, loc),
			want: true,
		},
		{
			name: "same day different hours",
			a:    time.Date(2025, 6, 9, 0, 0, 1, 0, loc),
			b:    time.Date(2025, 6, 9, 23, 59, 0, 0, loc),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2025, 6, 9, 23, 59, 0, 0, loc),
			b:    time.Date(2025, 6, 10, 0, 1, 0, 0, loc),
			want: false,
		},
		{
			name: "same wall day in different zones compares in first argument's zone",
			a:    time.Date(2025, 6, 9, 1, 0, 0, 0, loc),
			b:    time.Date(2025, 6, 8, 22, 0, 0, 0, time.FixedZone("UTC-4", -4*3600)),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithinDay(t *testing.T) {
	loc := time.UTC
	start, end := DayBounds(time.Date(2025, 6, 9, 12, 0, 0, 0, loc))

	if !WithinDay(start, start, end) {
		t.Errorf("WithinDay() start bound should be inclusive")
	}
	if !WithinDay(end, start, end) {
		t.Errorf("WithinDay() end bound should be inclusive")
	}
	if WithinDay(start.Add(-time.Nanosecond), start, end) {
		t.Errorf("WithinDay() should exclude instants before the day")
	}
	if WithinDay(end.Add(time.Hour), start, end) {
		t.Errorf("WithinDay() should exclude instants after the day")
	}
}

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone Europe/London", timezone: "Europe/London", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}
