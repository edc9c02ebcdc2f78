package authgate_test

import (
	"testing"

	"pracd-client/internal/authgate"
	"pracd-client/internal/model"
)

func TestPublicRoutesAlwaysAllow(t *testing.T) {
	public := []authgate.Route{
		authgate.RouteHome,
		authgate.RouteDoctors,
		authgate.RouteDoctorDetail,
		authgate.RouteContact,
		authgate.RouteBooking,
		authgate.RouteAdminLogin,
	}
	for _, r := range public {
		if d := authgate.CanAccess(r, nil); !d.Allow {
			t.Errorf("%s: expected allow without identity", r)
		}
	}
}

func TestDashboardRequiresIdentity(t *testing.T) {
	d := authgate.CanAccess(authgate.RouteDashboard, nil)
	if d.Allow {
		t.Fatal("expected deny without identity")
	}
	if d.Reason != authgate.ReasonLoginRequired {
		t.Errorf("reason: got %q", d.Reason)
	}

	id := &model.Identity{ID: "u1", Role: model.RolePatient}
	if d := authgate.CanAccess(authgate.RouteDashboard, id); !d.Allow {
		t.Error("expected allow with identity")
	}
}

func TestAdminRedirect(t *testing.T) {
	tests := []struct {
		name   string
		id     *model.Identity
		allow  bool
		reason authgate.DenyReason
	}{
		{"no identity", nil, false, authgate.ReasonLoginRequired},
		{"patient", &model.Identity{ID: "u1", Role: model.RolePatient}, false, authgate.ReasonAdminOnly},
		{"doctor", &model.Identity{ID: "d1", Role: model.RoleDoctor}, false, authgate.ReasonAdminOnly},
		{"admin", &model.Identity{ID: "a1", Role: model.RoleAdmin}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := authgate.AdminRedirect(tt.id)
			if d.Allow != tt.allow {
				t.Fatalf("allow: got %v, want %v", d.Allow, tt.allow)
			}
			if d.Reason != tt.reason {
				t.Errorf("reason: got %q, want %q", d.Reason, tt.reason)
			}
		})
	}
}
