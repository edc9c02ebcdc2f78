package moderation

import (
	"context"
	"fmt"

	"pracd-client/internal/api"
	"pracd-client/internal/model"
)

// InvalidTargetError rejects a status value outside the allowed set before
// any command is sent.
type InvalidTargetError struct {
	Target string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target status %q", e.Target)
}

// Moderator dispatches administrator status commands and keeps local read
// models in step with acknowledged writes. Updates are optimistic in the
// "last acknowledged write wins" sense: there is no compensating
// transaction when two administrators interleave, the server stays
// authoritative and callers surface a reload affordance on suspicion.
type Moderator struct {
	client *api.Client
}

func New(client *api.Client) *Moderator {
	return &Moderator{client: client}
}

// SetAppointmentStatus transitions an appointment to approved or rejected.
// pending was the creation default and can never be a target again; moving
// between approved and rejected remains allowed. When appts is non-nil the
// matching local record is updated after the server acknowledges.
func (m *Moderator) SetAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus, appts []model.Appointment) error {
	if status != model.AppointmentApproved && status != model.AppointmentRejected {
		return &InvalidTargetError{Target: string(status)}
	}
	if err := m.client.SetAppointmentStatus(ctx, id, status); err != nil {
		return err
	}
	for i := range appts {
		if appts[i].Key() == id {
			appts[i].Status = status
		}
	}
	return nil
}

// SetAccountStatus flips a user between Active and Inactive, in either
// direction. Inactive patients are refused by the booking wizard.
func (m *Moderator) SetAccountStatus(ctx context.Context, id string, status model.AccountStatus, users []model.Profile) error {
	if status != model.AccountActive && status != model.AccountInactive {
		return &InvalidTargetError{Target: string(status)}
	}
	if err := m.client.SetProfileStatus(ctx, id, status); err != nil {
		return err
	}
	for i := range users {
		if users[i].Key() == id {
			users[i].Status = status
		}
	}
	return nil
}
