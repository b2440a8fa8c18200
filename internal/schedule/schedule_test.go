package schedule_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"fgmedic-cli/internal/model"
	"fgmedic-cli/internal/schedule"
)

func TestSlots(t *testing.T) {
	slots := schedule.Slots()
	if len(slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(slots))
	}

	seen := map[string]bool{}
	for h, s := range slots {
		if want := fmt.Sprintf("%02d:00", h); s != want {
			t.Errorf("slot %d: got %q, want %q", h, s, want)
		}
		if seen[s] {
			t.Errorf("duplicate slot %q", s)
		}
		seen[s] = true
	}

	if slots[0] != "00:00" || slots[23] != "23:00" {
		t.Errorf("slots must run 00:00..23:00, got %q..%q", slots[0], slots[23])
	}
}

func TestValidSlot(t *testing.T) {
	if !schedule.ValidSlot("09:00") {
		t.Error("09:00 should be valid")
	}
	for _, bad := range []string{"9:00", "09:30", "24:00", ""} {
		if schedule.ValidSlot(bad) {
			t.Errorf("%q should not be valid", bad)
		}
	}
}

func appt(id int, at time.Time) model.Appointment {
	return model.Appointment{ID: id, Time: at, Status: model.StatusConfirmed}
}

func TestPartition(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	appts := []model.Appointment{
		appt(1, now.Add(2*time.Hour)),
		appt(2, now.Add(-3*time.Hour)),
		appt(3, now.Add(30*time.Minute)),
		appt(4, now.Add(-10*time.Minute)),
		appt(5, now.Add(48*time.Hour)),
	}

	upcoming, past := schedule.Partition(appts, now)

	// total and exclusive
	if len(upcoming)+len(past) != len(appts) {
		t.Fatalf("partition lost entries: %d + %d != %d", len(upcoming), len(past), len(appts))
	}
	ids := map[int]int{}
	for _, a := range upcoming {
		ids[a.ID]++
	}
	for _, a := range past {
		ids[a.ID]++
	}
	for _, a := range appts {
		if ids[a.ID] != 1 {
			t.Errorf("appointment %d appears %d times", a.ID, ids[a.ID])
		}
	}

	// upcoming ascending, soonest first
	wantUp := []int{3, 1, 5}
	for i, a := range upcoming {
		if a.ID != wantUp[i] {
			t.Errorf("upcoming[%d] = %d, want %d", i, a.ID, wantUp[i])
		}
	}
	// past descending, most recent first
	wantPast := []int{4, 2}
	for i, a := range past {
		if a.ID != wantPast[i] {
			t.Errorf("past[%d] = %d, want %d", i, a.ID, wantPast[i])
		}
	}
}

func TestPartitionIdempotent(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	appts := []model.Appointment{
		appt(1, now.Add(time.Hour)),
		appt(2, now.Add(-time.Hour)),
		appt(3, now.Add(2*time.Hour)),
	}

	up1, past1 := schedule.Partition(appts, now)
	up2, past2 := schedule.Partition(appts, now)

	if !reflect.DeepEqual(up1, up2) || !reflect.DeepEqual(past1, past2) {
		t.Error("partition of identical input must be identical")
	}
}

func TestPartitionBoundary(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	upcoming, past := schedule.Partition([]model.Appointment{appt(1, now)}, now)

	// exactly-now is past, not upcoming
	if len(upcoming) != 0 || len(past) != 1 {
		t.Fatalf("appointment at now must be past: upcoming=%d past=%d", len(upcoming), len(past))
	}
}

func TestPartitionEmpty(t *testing.T) {
	upcoming, past := schedule.Partition(nil, time.Now())
	if len(upcoming) != 0 || len(past) != 0 {
		t.Error("empty input must partition to empty halves")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 5, 1, 23, 59, 0, 0, time.Local)
	for _, tc := range []struct {
		name string
		b    time.Time
		want bool
	}{
		{"same day morning", time.Date(2024, 5, 1, 0, 0, 1, 0, time.Local), true},
		{"same instant", a, true},
		{"next midnight", time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local), false},
		{"previous day", time.Date(2024, 4, 30, 23, 59, 0, 0, time.Local), false},
		{"same day next month", time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local), false},
	} {
		if got := schedule.SameDay(a, tc.b); got != tc.want {
			t.Errorf("%s: SameDay = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestActionable(t *testing.T) {
	at := time.Date(2024, 5, 1, 23, 59, 0, 0, time.Local)

	for _, tc := range []struct {
		name   string
		status string
		now    time.Time
		want   bool
	}{
		{"same day before start", model.StatusConfirmed, time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local), true},
		{"just before midnight", model.StatusConfirmed, time.Date(2024, 5, 1, 23, 58, 0, 0, time.Local), true},
		{"day after at midnight", model.StatusConfirmed, time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local), false},
		{"day before", model.StatusConfirmed, time.Date(2024, 4, 30, 9, 0, 0, 0, time.Local), false},
		{"already started", model.StatusConfirmed, at, false},
		{"already attended", model.StatusAttended, time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local), false},
		{"no-show", model.StatusNoShow, time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local), false},
	} {
		a := model.Appointment{ID: 1, Time: at, Status: tc.status}
		if got := schedule.Actionable(a, tc.now); got != tc.want {
			t.Errorf("%s: Actionable = %v, want %v", tc.name, got, tc.want)
		}
	}
}
