package api

import (
	"context"
	"fmt"
	"net/http"

	"fgmedic-cli/internal/model"
)

// ListDoctors fetches the doctor directory. Open endpoint, no auth.
func (c *Client) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	var out struct {
		Doctors []model.Doctor `json:"doctors"`
	}
	if err := c.do(ctx, http.MethodGet, "/doctors", nil, &out); err != nil {
		return nil, err
	}
	return out.Doctors, nil
}

// Register creates a patient account. Field names follow the backend's
// Spanish contract.
func (c *Client) Register(ctx context.Context, name, email, phone, password string) error {
	body := struct {
		Nombre   string `json:"nombre"`
		Email    string `json:"email"`
		Telefono string `json:"telefono"`
		Password string `json:"password"`
	}{name, email, phone, password}
	return c.do(ctx, http.MethodPost, "/register", body, nil)
}

// Login exchanges credentials for a bearer token and the user's profile.
func (c *Client) Login(ctx context.Context, email, password string) (string, *model.Identity, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	var out struct {
		AccessToken string         `json:"access_token"`
		User        model.Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return "", nil, err
	}
	return out.AccessToken, &out.User, nil
}

// ListAppointments returns every appointment visible to the session: the
// patient's own, or all of a doctor's.
func (c *Client) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	var out struct {
		Appointments []model.Appointment `json:"appointments"`
	}
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out.Appointments, nil
}

// CreateAppointment books a slot. appointmentTime is already serialized by
// the booking form (canonical UTC, millisecond precision).
func (c *Client) CreateAppointment(ctx context.Context, doctorID int, appointmentTime, reason string) error {
	body := struct {
		DoctorID        int    `json:"doctor_id"`
		AppointmentTime string `json:"appointment_time"`
		Reason          string `json:"reason"`
	}{doctorID, appointmentTime, reason}
	return c.do(ctx, http.MethodPost, "/appointments", body, nil)
}

// UpdateAppointmentStatus marks an appointment Atendida or No Asistió. The
// service is the final authority and may reject regardless of what the
// local gate allowed.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int, status string) error {
	body := struct {
		Status string `json:"status"`
	}{status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/appointments/%d/status", id), body, nil)
}

// UpdateDoctorCalendar stores the doctor's external calendar identifier.
func (c *Client) UpdateDoctorCalendar(ctx context.Context, doctorID int, calendarID string) error {
	body := struct {
		CalendarID string `json:"calendar_id"`
	}{calendarID}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/doctors/%d/calendar", doctorID), body, nil)
}

// UpdateUserProfile renames the user's own profile.
func (c *Client) UpdateUserProfile(ctx context.Context, userID int, name string) error {
	body := struct {
		Name string `json:"name"`
	}{name}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d/profile", userID), body, nil)
}
