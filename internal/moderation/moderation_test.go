package moderation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"pracd-client/internal/api"
	"pracd-client/internal/model"
	"pracd-client/internal/moderation"
	"pracd-client/internal/session"
)

func newModerator(t *testing.T, h http.Handler) *moderation.Moderator {
	t.Helper()
	if h == nil {
		h = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected network call")
		})
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	sessions := session.New(filepath.Join(t.TempDir(), "session.json"))
	if err := sessions.Issue("tok-admin"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	return moderation.New(api.New(srv.URL, sessions))
}

func TestAppointmentTargetValidation(t *testing.T) {
	m := newModerator(t, nil)

	for _, target := range []string{"pending", "cancelled", "", "Approved"} {
		err := m.SetAppointmentStatus(t.Context(), "a1", model.AppointmentStatus(target), nil)
		var iterr *moderation.InvalidTargetError
		if !errors.As(err, &iterr) {
			t.Errorf("target %q: expected InvalidTargetError, got %v", target, err)
		}
	}
}

func TestAccountTargetValidation(t *testing.T) {
	m := newModerator(t, nil)

	for _, target := range []string{"active", "banned", ""} {
		err := m.SetAccountStatus(t.Context(), "u1", model.AccountStatus(target), nil)
		var iterr *moderation.InvalidTargetError
		if !errors.As(err, &iterr) {
			t.Errorf("target %q: expected InvalidTargetError, got %v", target, err)
		}
	}
}

func TestAppointmentStatusUpdatesLocalRecord(t *testing.T) {
	m := newModerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/appointment/status/a2" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
	}))

	appts := []model.Appointment{
		{ID: "a1", Status: model.AppointmentPending},
		{ID: "a2", Status: model.AppointmentPending},
	}
	if err := m.SetAppointmentStatus(t.Context(), "a2", model.AppointmentApproved, appts); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if appts[0].Status != model.AppointmentPending {
		t.Errorf("a1 must be untouched, got %q", appts[0].Status)
	}
	if appts[1].Status != model.AppointmentApproved {
		t.Errorf("a2: got %q, want approved", appts[1].Status)
	}
}

func TestApprovedAndRejectedInterchange(t *testing.T) {
	m := newModerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	appts := []model.Appointment{{ID: "a1", Status: model.AppointmentApproved}}
	if err := m.SetAppointmentStatus(t.Context(), "a1", model.AppointmentRejected, appts); err != nil {
		t.Fatalf("approved -> rejected: %v", err)
	}
	if err := m.SetAppointmentStatus(t.Context(), "a1", model.AppointmentApproved, appts); err != nil {
		t.Fatalf("rejected -> approved: %v", err)
	}
	if appts[0].Status != model.AppointmentApproved {
		t.Errorf("status: got %q, want approved", appts[0].Status)
	}
}

func TestServerRefusalLeavesLocalUntouched(t *testing.T) {
	m := newModerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	appts := []model.Appointment{{ID: "a1", Status: model.AppointmentPending}}
	if err := m.SetAppointmentStatus(t.Context(), "a1", model.AppointmentApproved, appts); err == nil {
		t.Fatal("expected error")
	}
	if appts[0].Status != model.AppointmentPending {
		t.Errorf("local record must not change on a refused write, got %q", appts[0].Status)
	}
}

func TestAccountStatusBothDirections(t *testing.T) {
	m := newModerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	users := []model.Profile{{ID: "u1", Status: model.AccountActive}}
	if err := m.SetAccountStatus(t.Context(), "u1", model.AccountInactive, users); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if users[0].Status != model.AccountInactive {
		t.Errorf("status: got %q, want Inactive", users[0].Status)
	}
	if err := m.SetAccountStatus(t.Context(), "u1", model.AccountActive, users); err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if users[0].Status != model.AccountActive {
		t.Errorf("status: got %q, want Active", users[0].Status)
	}
}

func TestAltIDMatchesModerationTarget(t *testing.T) {
	m := newModerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	// some backends only populate _id
	appts := []model.Appointment{{AltID: "a9", Status: model.AppointmentPending}}
	if err := m.SetAppointmentStatus(t.Context(), "a9", model.AppointmentApproved, appts); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if appts[0].Status != model.AppointmentApproved {
		t.Errorf("status: got %q, want approved", appts[0].Status)
	}
}
