package appointment

import "time"

// Appointment is a confirmed consultation slot, usually created from a
// pending booking once the team calls the customer back.
type Appointment struct {
	ID            string
	BookingID     string
	CustomerName  string
	ScheduledDate string
	ScheduledTime string
	Location      string
	Notes         string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

func validStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type CreateAppointmentInput struct {
	BookingID     string
	CustomerName  string
	ScheduledDate string
	ScheduledTime string
	Location      string
	Notes         string
}

type ListAppointmentsInput struct {
	Status string
	Date   string
	Page   int
	Limit  int
}

type ListAppointmentsOutput struct {
	Appointments []Appointment
	Total        int
	Page         int
	Limit        int
}

type UpdateAppointmentInput struct {
	ID            string
	ScheduledDate string
	ScheduledTime string
	Location      string
	Notes         string
	Status        string
}
