package identity_test

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"pracd-client/internal/identity"
	"pracd-client/internal/model"
)

func mint(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestResolve(t *testing.T) {
	tok := mint(t, jwt.MapClaims{
		"id": "u1", "role": "patient", "email": "a@x.com", "name": "Asha",
	})

	id, err := identity.Resolve(tok)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.ID != "u1" {
		t.Errorf("id: got %q", id.ID)
	}
	if id.Role != model.RolePatient {
		t.Errorf("role: got %q", id.Role)
	}
	if id.Email != "a@x.com" {
		t.Errorf("email: got %q", id.Email)
	}
	if id.Name != "Asha" {
		t.Errorf("name: got %q", id.Name)
	}
}

func TestResolveIDAliasOrder(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{"id wins over everything", jwt.MapClaims{"id": "a", "_id": "b", "userId": "c", "sub": "d"}, "a"},
		{"_id wins over userId and sub", jwt.MapClaims{"_id": "b", "userId": "c", "sub": "d"}, "b"},
		{"userId wins over sub", jwt.MapClaims{"userId": "c", "sub": "d"}, "c"},
		{"sub as last resort", jwt.MapClaims{"sub": "d"}, "d"},
		{"empty id falls through", jwt.MapClaims{"id": "", "_id": "b"}, "b"},
		{"no alias at all", jwt.MapClaims{"role": "patient"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := identity.Resolve(mint(t, tt.claims))
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if id.ID != tt.want {
				t.Errorf("id: got %q, want %q", id.ID, tt.want)
			}
		})
	}
}

func TestResolveNoVerification(t *testing.T) {
	// decoding is local-only: a token signed with any key resolves
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "u9"}).
		SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	id, err := identity.Resolve(tok)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.ID != "u9" {
		t.Errorf("id: got %q", id.ID)
	}
}

func TestResolveMalformed(t *testing.T) {
	tests := []string{"", "not-a-token", "a.b", "x.y.z"}
	for _, raw := range tests {
		if _, err := identity.Resolve(raw); !errors.Is(err, identity.ErrDecode) {
			t.Errorf("Resolve(%q): expected ErrDecode, got %v", raw, err)
		}
	}
}
