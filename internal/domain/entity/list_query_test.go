package entity

import (
	"testing"
	"time"
)

func TestNewListQuery_Defaults(t *testing.T) {
	query, err := NewListQuery("", "", 0, -5, ProfessionOrderKeys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Limit != DefaultListLimit {
		t.Errorf("limit = %d, want %d", query.Limit, DefaultListLimit)
	}
	if query.Offset != 0 {
		t.Errorf("offset = %d, want 0", query.Offset)
	}
}

func TestNewListQuery_ClampsLimit(t *testing.T) {
	query, err := NewListQuery("", "", 5000, 0, ProfessionOrderKeys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Limit != MaxListLimit {
		t.Errorf("limit = %d, want %d", query.Limit, MaxListLimit)
	}
}

func TestNewListQuery_AcceptsKnownOrderKeys(t *testing.T) {
	for _, order := range ProfessionOrderKeys {
		if _, err := NewListQuery("", order, 10, 0, ProfessionOrderKeys); err != nil {
			t.Errorf("order %q rejected: %v", order, err)
		}
	}
}

func TestNewListQuery_RejectsUnknownOrderKey(t *testing.T) {
	cases := []string{"salary", "-salary", "name;DROP TABLE doctors", "NAME"}
	for _, order := range cases {
		if _, err := NewListQuery("", order, 10, 0, ProfessionOrderKeys); err == nil {
			t.Errorf("order %q accepted, want error", order)
		}
	}
}

func TestNewAppointmentListQuery_RejectsUnknownOrderKey(t *testing.T) {
	if _, err := NewAppointmentListQuery("name", 10, 0, nil, nil, 0, 0); err == nil {
		t.Error("order \"name\" accepted, want error")
	}
}

func TestAppointmentOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	appointment := &Appointment{
		StartTime: base,
		EndTime:   base.Add(time.Hour),
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical window", base, base.Add(time.Hour), true},
		{"contained window", base.Add(15 * time.Minute), base.Add(30 * time.Minute), true},
		{"containing window", base.Add(-time.Hour), base.Add(2 * time.Hour), true},
		{"overlaps start", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"overlaps end", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"touches start", base.Add(-time.Hour), base, false},
		{"touches end", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"before", base.Add(-2 * time.Hour), base.Add(-time.Hour), false},
		{"after", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := appointment.Overlaps(tc.start, tc.end); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}
