package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"fgmedic-cli/internal/model"
	"fgmedic-cli/internal/schedule"
)

var (
	ErrNotDoctor          = errors.New("only doctors can manage appointments")
	ErrBadStatus          = errors.New("status must be Atendida or No Asistió")
	ErrUnknownAppointment = errors.New("no such appointment in the current list")
	// status changes are gated to confirmed, upcoming, same-day
	// appointments; the service is still the final authority
	ErrNotActionable = errors.New("appointment is not eligible for a status change today")
)

// Service is the slice of the backend the dashboard needs.
type Service interface {
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int, status string) error
	UpdateDoctorCalendar(ctx context.Context, doctorID int, calendarID string) error
}

// Session exposes the read side of the session plus the one mutation the
// dashboard is allowed to trigger through the store.
type Session interface {
	Identity() *model.Identity
	SetCalendarRef(calendarID string)
}

// Controller drives the doctor's view: a wholesale-replaced snapshot of the
// appointment list, partitioned on every read, with status transitions
// written back through the service.
type Controller struct {
	svc     Service
	session Session
	log     zerolog.Logger
	now     func() time.Time

	appts []model.Appointment
}

func NewController(svc Service, session Session, log zerolog.Logger) *Controller {
	return &Controller{svc: svc, session: session, log: log, now: time.Now}
}

// Refresh replaces the snapshot from the service. It is the only way the
// list ever changes; nothing is patched locally.
func (c *Controller) Refresh(ctx context.Context) error {
	if !c.session.Identity().IsDoctor() {
		return ErrNotDoctor
	}
	appts, err := c.svc.ListAppointments(ctx)
	if err != nil {
		return err
	}
	c.appts = appts
	return nil
}

func (c *Controller) Appointments() []model.Appointment { return c.appts }

// Upcoming returns appointments strictly after now, soonest first.
func (c *Controller) Upcoming() []model.Appointment {
	up, _ := schedule.Partition(c.appts, c.now())
	return up
}

// Past returns appointments at or before now, most recent first.
func (c *Controller) Past() []model.Appointment {
	_, past := schedule.Partition(c.appts, c.now())
	return past
}

// Actionable reports whether the appointment currently qualifies for a
// status change.
func (c *Controller) Actionable(a model.Appointment) bool {
	return schedule.Actionable(a, c.now())
}

// SetStatus marks an appointment attended or missed. On success the whole
// list is re-fetched so the partition is recomputed from the source of
// truth; on failure the prior status stands and the error is surfaced. No
// retry either way.
func (c *Controller) SetStatus(ctx context.Context, id int, status string) error {
	if !model.ValidTransition(status) {
		return ErrBadStatus
	}

	var found *model.Appointment
	for i := range c.appts {
		if c.appts[i].ID == id {
			found = &c.appts[i]
			break
		}
	}
	if found == nil {
		return ErrUnknownAppointment
	}
	if !schedule.Actionable(*found, c.now()) {
		return ErrNotActionable
	}

	if err := c.svc.UpdateAppointmentStatus(ctx, id, status); err != nil {
		return err
	}
	c.log.Info().Int("appointment_id", id).Str("status", status).Msg("appointment updated")

	return c.Refresh(ctx)
}

func (c *Controller) MarkAttended(ctx context.Context, id int) error {
	return c.SetStatus(ctx, id, model.StatusAttended)
}

func (c *Controller) MarkMissed(ctx context.Context, id int) error {
	return c.SetStatus(ctx, id, model.StatusNoShow)
}

// SaveCalendarID stores the doctor's external calendar identifier and
// mirrors it into the cached session identity.
func (c *Controller) SaveCalendarID(ctx context.Context, calendarID string) error {
	id := c.session.Identity()
	if !id.IsDoctor() {
		return ErrNotDoctor
	}
	if err := c.svc.UpdateDoctorCalendar(ctx, id.ID, calendarID); err != nil {
		return err
	}
	c.session.SetCalendarRef(calendarID)
	return nil
}
