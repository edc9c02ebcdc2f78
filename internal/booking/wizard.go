package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pracd-client/internal/api"
	"pracd-client/internal/identity"
	"pracd-client/internal/model"
	"pracd-client/internal/session"
)

// Step is the wizard position. Transitions happen only through the guarded
// methods below, so an illegal jump cannot be expressed by callers.
type Step int

const (
	StepInfo Step = iota
	StepDateTime
	StepBasicInfo
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepInfo:
		return "Info"
	case StepDateTime:
		return "DateTime"
	case StepBasicInfo:
		return "BasicInfo"
	case StepSubmitted:
		return "Submitted"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// TimeSlots is the fixed set of bookable labels, 35 minutes apart.
var TimeSlots = []string{
	"9:00 am", "9:35 am", "10:10 am", "10:45 am", "11:20 am", "11:55 am",
	"12:30 pm", "1:05 pm", "1:40 pm", "2:15 pm", "2:50 pm", "3:25 pm",
	"4:00 pm", "4:35 pm", "5:10 pm", "5:45 pm", "6:20 pm", "6:55 pm",
	"7:30 pm", "8:05 pm", "8:40 pm",
}

var (
	// ErrAccountInactive blocks booking for moderated-out patient accounts.
	// Distinct from api.ErrAuthRequired so callers can word the refusal.
	ErrAccountInactive = errors.New("account is inactive")
	ErrNoSlot          = errors.New("select a time slot first")
	ErrUnknownSlot     = errors.New("unknown time slot")
	ErrIllegalStep     = errors.New("not available at this step")
)

// ValidationError is caught at the form boundary and rendered inline.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// BasicInfo is the step-three form. Phone only ever holds sanitized digits.
type BasicInfo struct {
	Name  string
	Phone string
	Email string
}

// Wizard walks a patient through Info -> DateTime -> BasicInfo -> Submitted.
// Each forward transition re-checks the session via the store rather than
// caching the token, since the local expiry can lapse mid-flow.
type Wizard struct {
	sessions *session.Store
	client   *api.Client

	doctorID string
	doctor   *model.Profile
	profile  *model.Profile // logged-in user's own profile, may be nil

	step        Step
	date        time.Time
	slot        string
	patientType model.PatientType
	form        BasicInfo
}

// New starts a wizard for the doctor identified by route context. doctor is
// the public profile (fee snapshot source); profile is the logged-in user's
// own record, used for the inactive-account guard and myself-prefill, and
// may be nil when not loaded.
func New(sessions *session.Store, client *api.Client, doctorID string, doctor, profile *model.Profile) *Wizard {
	return &Wizard{
		sessions:    sessions,
		client:      client,
		doctorID:    doctorID,
		doctor:      doctor,
		profile:     profile,
		step:        StepInfo,
		patientType: model.PatientMyself,
	}
}

func (w *Wizard) Step() Step      { return w.step }
func (w *Wizard) Slot() string    { return w.slot }
func (w *Wizard) Form() BasicInfo { return w.form }
func (w *Wizard) Date() time.Time { return w.date }

// guard is the session check shared by every forward transition. A token
// that cannot be decoded counts as no session. Inactive patient accounts
// are refused with their own reason; doctors and admins are not subject to
// the eligibility check.
func (w *Wizard) guard() error {
	token, ok := w.sessions.Current()
	if !ok {
		return api.ErrAuthRequired
	}
	id, err := identity.Resolve(token)
	if err != nil {
		return api.ErrAuthRequired
	}
	if id.Role == model.RolePatient && w.profile != nil && w.profile.Status == model.AccountInactive {
		return ErrAccountInactive
	}
	return nil
}

// SelectDateTime moves Info -> DateTime. On failure the wizard stays in
// Info and the caller opens the login surface.
func (w *Wizard) SelectDateTime() error {
	if w.step != StepInfo {
		return ErrIllegalStep
	}
	if err := w.guard(); err != nil {
		return err
	}
	w.step = StepDateTime
	return nil
}

func (w *Wizard) SelectDate(d time.Time) {
	w.date = d
}

// SelectSlot picks one of the fixed labels.
func (w *Wizard) SelectSlot(slot string) error {
	for _, s := range TimeSlots {
		if s == slot {
			w.slot = slot
			return nil
		}
	}
	return ErrUnknownSlot
}

// EnterBasicInfo moves DateTime -> BasicInfo. Requires a valid session and
// a selected slot. On entry the form is prefilled for "myself" bookings.
func (w *Wizard) EnterBasicInfo() error {
	if w.step != StepDateTime {
		return ErrIllegalStep
	}
	if err := w.guard(); err != nil {
		return err
	}
	if w.slot == "" {
		return ErrNoSlot
	}
	w.step = StepBasicInfo
	w.applyPatientType()
	return nil
}

// SetPatientType switches between booking for myself and someone else.
// Moving away from "myself" clears the form instead of keeping stale data;
// moving back restores the profile defaults (still editable).
func (w *Wizard) SetPatientType(t model.PatientType) {
	w.patientType = model.PatientType(strings.ToLower(string(t)))
	w.applyPatientType()
}

func (w *Wizard) applyPatientType() {
	if w.patientType == model.PatientMyself {
		if w.profile != nil {
			w.form = BasicInfo{
				Name:  w.profile.DisplayName(),
				Phone: SanitizePhone(w.profile.Phone),
				Email: w.profile.EmailAddress(),
			}
		}
		return
	}
	w.form = BasicInfo{}
}

func (w *Wizard) SetName(name string)   { w.form.Name = name }
func (w *Wizard) SetEmail(email string) { w.form.Email = email }

// SetPhone sanitizes as typed: non-digits stripped, truncated to 10.
// Input is never rejected after the fact.
func (w *Wizard) SetPhone(input string) {
	w.form.Phone = SanitizePhone(input)
}

// SanitizePhone keeps at most 10 digit characters from the input.
func SanitizePhone(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 10 {
				break
			}
		}
	}
	return b.String()
}

// Back steps to the predecessor. Info has none, and a submitted booking
// cannot be unwound.
func (w *Wizard) Back() error {
	switch w.step {
	case StepDateTime:
		w.step = StepInfo
	case StepBasicInfo:
		w.step = StepDateTime
	default:
		return ErrIllegalStep
	}
	return nil
}

func (w *Wizard) validateForm() error {
	if w.form.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if w.form.Phone == "" {
		return &ValidationError{Field: "phone", Reason: "required"}
	}
	if len(w.form.Phone) != 10 {
		return &ValidationError{Field: "phone", Reason: "must be 10 digits"}
	}
	if w.form.Email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	return nil
}

// Confirm moves BasicInfo -> Submitted by posting the booking. The fee is
// snapshotted from the doctor's current profile at this moment and is not
// tied to later fee changes. Failures leave the wizard in BasicInfo with
// the entered data intact.
func (w *Wizard) Confirm(ctx context.Context) (*model.Appointment, error) {
	if w.step != StepBasicInfo {
		return nil, ErrIllegalStep
	}
	if err := w.guard(); err != nil {
		return nil, err
	}
	if w.slot == "" {
		return nil, ErrNoSlot
	}
	if err := w.validateForm(); err != nil {
		return nil, err
	}

	uid := ""
	if w.profile != nil {
		uid = w.profile.Key()
	}
	if uid == "" {
		if token, ok := w.sessions.Current(); ok {
			if id, err := identity.Resolve(token); err == nil {
				uid = id.ID
			}
		}
	}

	date := w.date
	if date.IsZero() {
		date = time.Now()
	}

	appt := &model.Appointment{
		PatientType: w.patientType,
		DoctorID:    w.doctorID,
		PatientID:   uid,
		PatientName: w.form.Name,
		Phone:       w.form.Phone,
		Email:       w.form.Email,
		Date:        date,
		TimeSlot:    w.slot,
		Status:      model.AppointmentPending,
	}
	if w.doctor != nil {
		appt.DoctorName = w.doctor.DisplayName()
		appt.DoctorEmail = w.doctor.EmailAddress()
		appt.Fees = w.doctor.Fees
	}

	if err := w.client.CreateAppointment(ctx, appt); err != nil {
		return nil, err
	}
	w.step = StepSubmitted
	return appt, nil
}

// FormatDate renders DD/MM/YYYY the way the booking surfaces show dates.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
