package schedule

import (
	"fmt"
	"sort"
	"time"

	"fgmedic-cli/internal/model"
)

// Slots returns the 24 bookable time labels, one per hour, "00:00" through
// "23:00". Pure and recomputed on every call.
func Slots() []string {
	out := make([]string, 24)
	for h := range out {
		out[h] = fmt.Sprintf("%02d:00", h)
	}
	return out
}

// ValidSlot reports whether label is one of the catalog's 24 entries.
func ValidSlot(label string) bool {
	for _, s := range Slots() {
		if s == label {
			return true
		}
	}
	return false
}

// Partition splits appointments around now: strictly later ones are
// upcoming (soonest first), everything else — including an appointment at
// exactly now — is past (most recent first). Every input lands in exactly
// one half.
func Partition(appts []model.Appointment, now time.Time) (upcoming, past []model.Appointment) {
	for _, a := range appts {
		if a.Time.After(now) {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Time.Before(upcoming[j].Time) })
	sort.SliceStable(past, func(i, j int) bool { return past[i].Time.After(past[j].Time) })
	return upcoming, past
}

// SameDay compares local calendar dates only; time of day is irrelevant.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// Actionable reports whether a doctor may change the appointment's status
// right now: still confirmed, still upcoming, and scheduled for today.
func Actionable(a model.Appointment, now time.Time) bool {
	return a.Status == model.StatusConfirmed && a.Time.After(now) && SameDay(a.Time, now)
}
