package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"pracd-client/internal/model"
)

var ErrDecode = errors.New("cannot decode token")

// idAliases is the ordered list of claims the user id may live under.
// Callers depend on this order; do not reorder.
var idAliases = []string{"id", "_id", "userId", "sub"}

// Resolve decodes a signed token into an identity without verifying the
// signature. Decoding is purely local: the result is a UI hint, and the
// backend still validates the token on every privileged call. A malformed
// token fails with ErrDecode and must be treated the same as no session.
func Resolve(token string) (model.Identity, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return model.Identity{}, ErrDecode
	}

	id := model.Identity{
		Role:  model.Role(str(claims, "role")),
		Email: str(claims, "email"),
		Name:  str(claims, "name"),
	}
	for _, alias := range idAliases {
		if v := str(claims, alias); v != "" {
			id.ID = v
			break
		}
	}
	return id, nil
}

func str(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
