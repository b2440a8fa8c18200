package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"fgmedic-cli/internal/model"
	"fgmedic-cli/internal/schedule"
)

var (
	ErrMissingFields = errors.New("doctor, date, time and reason are all required, and you must be signed in")
	ErrPastDate      = errors.New("that date is already in the past")
	ErrUnknownSlot   = errors.New("not a bookable time slot")
	ErrNotPending    = errors.New("nothing staged for confirmation")
)

// State of the draft. Validate moves Editing to PendingConfirmation; Submit
// runs PendingConfirmation through Submitting and ends in Done on success,
// or back in PendingConfirmation with the draft intact on failure.
type State int

const (
	Editing State = iota
	PendingConfirmation
	Submitting
	Done
)

// Service is the slice of the backend the form needs.
type Service interface {
	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	CreateAppointment(ctx context.Context, doctorID int, appointmentTime, reason string) error
}

// Session gates booking on authentication; the form never writes session
// state.
type Session interface {
	Authenticated() bool
}

// Form is the transient draft booking. It lives only while the user is
// filling it in; a successful submit or an explicit cancel re-initializes
// every field.
type Form struct {
	svc     Service
	session Session
	log     zerolog.Logger
	now     func() time.Time

	state    State
	doctors  []model.Doctor
	doctorID int
	date     time.Time // date component only, local midnight
	slot     string
	reason   string
}

func NewForm(svc Service, session Session, log zerolog.Logger) *Form {
	return &Form{svc: svc, session: session, log: log, now: time.Now}
}

func (f *Form) State() State { return f.state }

// LoadDoctors fills the selector from the directory service.
func (f *Form) LoadDoctors(ctx context.Context) error {
	docs, err := f.svc.ListDoctors(ctx)
	if err != nil {
		return err
	}
	f.doctors = docs
	return nil
}

func (f *Form) Doctors() []model.Doctor { return f.doctors }

func (f *Form) SetDoctor(id int) { f.doctorID = id }

// SetDate keeps only the calendar date. Days before yesterday are never
// offered; same-day booking stays allowed.
func (f *Form) SetDate(d time.Time) error {
	y, m, day := d.Local().Date()
	midnight := time.Date(y, m, day, 0, 0, 0, 0, time.Local)
	if midnight.Before(f.now().AddDate(0, 0, -1)) {
		return ErrPastDate
	}
	f.date = midnight
	return nil
}

func (f *Form) SetSlot(label string) error {
	if !schedule.ValidSlot(label) {
		return ErrUnknownSlot
	}
	f.slot = label
	return nil
}

func (f *Form) SetReason(reason string) { f.reason = reason }

// Validate checks completeness and authentication. On success the form
// moves to PendingConfirmation so the user gets one look at the summary
// before anything is sent; no network call happens here.
func (f *Form) Validate() error {
	if !f.session.Authenticated() || f.doctorID == 0 || f.date.IsZero() || f.slot == "" || f.reason == "" {
		return ErrMissingFields
	}
	f.state = PendingConfirmation
	return nil
}

// Summary is the human-readable review shown during confirmation.
type Summary struct {
	DoctorEmail string
	Date        string // Spanish long form, e.g. "lunes, 10 de junio de 2024"
	Time        string
	Reason      string
}

func (f *Form) Summary() Summary {
	s := Summary{Time: f.slot, Reason: f.reason}
	for _, d := range f.doctors {
		if d.ID == f.doctorID {
			s.DoctorEmail = d.Email
		}
	}
	if !f.date.IsZero() {
		s.Date = spanishDate(f.date)
	}
	return s
}

// Submit sends exactly one create request for the staged draft. Success
// re-initializes the form; failure keeps every field so the user can retry,
// and the error is the service's own message when it sent one.
func (f *Form) Submit(ctx context.Context) error {
	if f.state != PendingConfirmation {
		return ErrNotPending
	}
	f.state = Submitting

	when := f.appointmentTime()
	f.log.Info().Int("doctor_id", f.doctorID).Str("time", when).Msg("booking appointment")

	if err := f.svc.CreateAppointment(ctx, f.doctorID, when, f.reason); err != nil {
		f.state = PendingConfirmation
		return err
	}

	f.reset()
	f.state = Done
	return nil
}

// Cancel abandons the draft entirely.
func (f *Form) Cancel() {
	f.reset()
	f.state = Editing
}

// appointmentTime composes the local calendar date with the slot hour,
// minutes and seconds zeroed, serialized as canonical UTC with millisecond
// precision — the wire format the service expects.
func (f *Form) appointmentTime() string {
	var hour int
	fmt.Sscanf(f.slot, "%d:00", &hour)
	t := time.Date(f.date.Year(), f.date.Month(), f.date.Day(), hour, 0, 0, 0, time.Local)
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func (f *Form) reset() {
	f.doctorID = 0
	f.date = time.Time{}
	f.slot = ""
	f.reason = ""
}
