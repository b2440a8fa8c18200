package model

import "time"

// Roles as the identity service reports them.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// Appointment statuses use the service's own (Spanish) vocabulary; they
// travel on the wire verbatim.
const (
	StatusConfirmed = "Confirmada"
	StatusAttended  = "Atendida"
	StatusNoShow    = "No Asistió"
)

// Identity is the authenticated user's profile as returned by /login.
type Identity struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	CalendarID *string `json:"calendar_id"`
}

func (i *Identity) IsDoctor() bool { return i != nil && i.Role == RoleDoctor }

// Doctor is the read-only directory projection.
type Doctor struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type Appointment struct {
	ID           int       `json:"id"`
	PatientID    int       `json:"patient_id"`
	DoctorID     int       `json:"doctor_id"`
	PatientName  string    `json:"patient_name"`
	PatientEmail string    `json:"patient_email"`
	DoctorEmail  string    `json:"doctor_email"`
	Time         time.Time `json:"appointment_time"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
}

// ValidTransition reports whether status is one a doctor may move a
// confirmed appointment to. Atendida and No Asistió are terminal; there is
// no path back to Confirmada and none between the two.
func ValidTransition(status string) bool {
	return status == StatusAttended || status == StatusNoShow
}
