package model

import "time"

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// AccountStatus is administrator-controlled and gates booking for patients.
type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

type AppointmentStatus string

const (
	AppointmentPending  AppointmentStatus = "pending"
	AppointmentApproved AppointmentStatus = "approved"
	AppointmentRejected AppointmentStatus = "rejected"
)

type PatientType string

const (
	PatientMyself      PatientType = "myself"
	PatientSomeoneElse PatientType = "someoneelse"
)

// Identity is decoded from the session token. It is a UI hint only; the
// backend re-validates the token on every privileged call.
type Identity struct {
	ID    string
	Role  Role
	Email string
	Name  string
}

// Profile is the account record mirrored from the backend. Mongo-style
// backends send _id, others send id; use Key() instead of reading either
// field directly.
type Profile struct {
	ID        string        `json:"id,omitempty"`
	AltID     string        `json:"_id,omitempty"`
	Username  string        `json:"username"`
	Name      string        `json:"name,omitempty"`
	UserEmail string        `json:"useremail"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone"`
	Address   string        `json:"address"`
	Age       int           `json:"age,omitempty"`
	Role      Role          `json:"role"`
	Status    AccountStatus `json:"status"`

	// doctor-only
	Specialization string  `json:"specialization,omitempty"`
	Fees           float64 `json:"fees,omitempty"`
	Experience     int     `json:"experience,omitempty"`
	Bio            string  `json:"doctor_description,omitempty"`
	Image          string  `json:"profileImage,omitempty"`
}

func (p *Profile) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.AltID
}

// DisplayName prefers the username over the bare name claim.
func (p *Profile) DisplayName() string {
	if p.Username != "" {
		return p.Username
	}
	return p.Name
}

func (p *Profile) EmailAddress() string {
	if p.UserEmail != "" {
		return p.UserEmail
	}
	return p.Email
}

// Appointment mirrors a backend appointment record. Status is mutated only
// by an administrator; everything else is immutable after creation.
type Appointment struct {
	ID          string            `json:"id,omitempty"`
	AltID       string            `json:"_id,omitempty"`
	DoctorID    string            `json:"doctor_id"`
	PatientID   string            `json:"user_id"`
	PatientName string            `json:"name"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	PatientType PatientType       `json:"patient_type"`
	Date        time.Time         `json:"date"`
	TimeSlot    string            `json:"time_slot"`
	DoctorName  string            `json:"doctor_name,omitempty"`
	DoctorEmail string            `json:"doctor_email,omitempty"`
	Fees        float64           `json:"fees"`
	Status      AppointmentStatus `json:"status"`
}

func (a *Appointment) Key() string {
	if a.ID != "" {
		return a.ID
	}
	return a.AltID
}

// Enquiry is a contact-form submission, listable by administrators.
type Enquiry struct {
	ID           string `json:"id,omitempty"`
	AltID        string `json:"_id,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Message      string `json:"message,omitempty"`
}

// AdminStats is the aggregate served by GET /api/admin/stats, or derived
// client-side when that endpoint is unavailable.
type AdminStats struct {
	TotalAppointments int `json:"totalAppointments"`
	ActiveDoctors     int `json:"activeDoctors"`
	ActivePatients    int `json:"activePatients"`
}
