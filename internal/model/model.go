package model

import "time"

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleDoctor || r == RolePatient
}

// Appointment status is set once at creation and never transitioned by any
// endpoint; the remaining values exist for forward compatibility with the
// schema's CHECK constraint.
const (
	AppointmentStatusScheduled = "scheduled"
	DefaultAppointmentDuration = 30
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        *string   `json:"phone,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Patient struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	Address          *string   `json:"address,omitempty"`
	EmergencyContact *string   `json:"emergency_contact,omitempty"`
	BloodType        *string   `json:"blood_type,omitempty"`
	MedicalHistory   *string   `json:"medical_history,omitempty"`
	Allergies        *string   `json:"allergies,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type Doctor struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Specialization  string    `json:"specialization"`
	LicenseNumber   string    `json:"license_number"`
	Experience      int       `json:"experience"`
	Qualification   *string   `json:"qualification,omitempty"`
	ConsultationFee float64   `json:"consultation_fee"`
	CreatedAt       time.Time `json:"created_at"`
}

type Appointment struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	DateTime  time.Time `json:"date_time"`
	Duration  int       `json:"duration"`
	Type      string    `json:"type"`
	Notes     *string   `json:"notes,omitempty"`
	Symptoms  *string   `json:"symptoms,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PatientRow is the read model for patient listings and reports: the profile
// joined with its owning account.
type PatientRow struct {
	Patient
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
}

type DoctorRow struct {
	Doctor
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
}

// AppointmentRow denormalizes both participants' names and the doctor's
// specialization for list and report views.
type AppointmentRow struct {
	Appointment
	PatientFirstName string `json:"patient_first_name"`
	PatientLastName  string `json:"patient_last_name"`
	DoctorFirstName  string `json:"doctor_first_name"`
	DoctorLastName   string `json:"doctor_last_name"`
	Specialization   string `json:"specialization"`
}
