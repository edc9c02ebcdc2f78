package api

import (
	"context"
	"encoding/json"
	"net/url"

	"pracd-client/internal/model"
)

var appointmentKeys = []string{"appointments", "results", "items"}

// CreateAppointment posts a booking request built by the wizard.
func (c *Client) CreateAppointment(ctx context.Context, appt *model.Appointment) error {
	return c.post(ctx, "/api/appointment/", bearer, appt, nil, "failed to create appointment")
}

// AppointmentsByDoctor lists a doctor's incoming bookings. A 404 means no
// records yet and yields an empty list, not an error.
func (c *Client) AppointmentsByDoctor(ctx context.Context, doctorID string) ([]model.Appointment, error) {
	return c.appointmentList(ctx, "/api/appointment/doctor/"+url.PathEscape(doctorID))
}

// AppointmentsByPatient lists a patient's bookings, with the same 404
// treatment as AppointmentsByDoctor.
func (c *Client) AppointmentsByPatient(ctx context.Context, patientID string) ([]model.Appointment, error) {
	return c.appointmentList(ctx, "/api/appointment/patient/"+url.PathEscape(patientID))
}

// Appointments lists every appointment; admin only.
func (c *Client) Appointments(ctx context.Context) ([]model.Appointment, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/appointment/", bearer, &raw, "failed to load appointments"); err != nil {
		return nil, err
	}
	return decodeList[model.Appointment](raw, appointmentKeys...), nil
}

func (c *Client) appointmentList(ctx context.Context, path string) ([]model.Appointment, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, bearer, &raw, "failed to fetch appointments"); err != nil {
		if IsNotFound(err) {
			return []model.Appointment{}, nil
		}
		return nil, err
	}
	return decodeList[model.Appointment](raw, appointmentKeys...), nil
}

// SetAppointmentStatus issues the appointment moderation command. Target
// validation happens in the moderation package before this is called.
func (c *Client) SetAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	body := struct {
		Status model.AppointmentStatus `json:"status"`
	}{status}
	return c.put(ctx, "/api/appointment/status/"+url.PathEscape(id), bearer, body, nil, "failed to update appointment")
}
