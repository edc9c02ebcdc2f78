package dashboard

import (
	"context"
	"strings"
	"time"

	"pracd-client/internal/api"
	"pracd-client/internal/model"
)

// PatientStats is the patient overview projection.
type PatientStats struct {
	Total    int
	Upcoming int
	// Next is the nearest future appointment date; zero when none.
	Next time.Time
}

// DoctorStats is the doctor overview projection.
type DoctorStats struct {
	Total    int
	Upcoming int
	// Earnings sums fees over every loaded appointment regardless of
	// status, rejected ones included.
	Earnings float64
}

// ProjectPatient recomputes the patient stats from the loaded collection.
// There is no incremental update; a full reload is the only refresh.
func ProjectPatient(appts []model.Appointment, now time.Time) PatientStats {
	st := PatientStats{Total: len(appts)}
	for _, a := range appts {
		if a.Date.IsZero() || a.Date.Before(now) {
			continue
		}
		st.Upcoming++
		if st.Next.IsZero() || a.Date.Before(st.Next) {
			st.Next = a.Date
		}
	}
	return st
}

// ProjectDoctor recomputes the doctor stats from the loaded collection.
func ProjectDoctor(appts []model.Appointment, now time.Time) DoctorStats {
	st := DoctorStats{Total: len(appts)}
	for _, a := range appts {
		st.Earnings += a.Fees
		if !a.Date.IsZero() && !a.Date.Before(now) {
			st.Upcoming++
		}
	}
	return st
}

// Aggregator builds role-specific read views on top of the API client.
type Aggregator struct {
	client *api.Client
}

func New(client *api.Client) *Aggregator {
	return &Aggregator{client: client}
}

// PatientOverview loads the patient's bookings and projects the stats.
func (g *Aggregator) PatientOverview(ctx context.Context, patientID string) ([]model.Appointment, PatientStats, error) {
	appts, err := g.client.AppointmentsByPatient(ctx, patientID)
	if err != nil {
		return nil, PatientStats{}, err
	}
	return appts, ProjectPatient(appts, time.Now()), nil
}

// DoctorOverview loads the doctor's bookings and projects the stats.
func (g *Aggregator) DoctorOverview(ctx context.Context, doctorID string) ([]model.Appointment, DoctorStats, error) {
	appts, err := g.client.AppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, DoctorStats{}, err
	}
	return appts, ProjectDoctor(appts, time.Now()), nil
}

// AdminOverview prefers the dedicated aggregate endpoint and falls back to
// counting client-side from the full appointment list and the Active
// profile list when the endpoint is unavailable.
func (g *Aggregator) AdminOverview(ctx context.Context) (model.AdminStats, error) {
	stats, err := g.client.AdminStats(ctx)
	if err == nil {
		return stats, nil
	}

	appts, err := g.client.Appointments(ctx)
	if err != nil {
		return model.AdminStats{}, err
	}
	profiles, err := g.client.Profiles(ctx, model.AccountActive)
	if err != nil {
		return model.AdminStats{}, err
	}

	derived := model.AdminStats{TotalAppointments: len(appts)}
	for _, p := range profiles {
		// role casing varies between backends
		switch model.Role(strings.ToLower(string(p.Role))) {
		case model.RoleDoctor:
			derived.ActiveDoctors++
		case model.RolePatient:
			derived.ActivePatients++
		}
	}
	return derived, nil
}
