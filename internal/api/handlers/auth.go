package handlers

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

// bearerSecurity is the security requirement attached to operations that
// need a signed-in user.
var bearerSecurity = []map[string][]string{{"bearer": {}}}

// BearerAuth is embedded in the input of operations that need a signed-in
// user. The token is the user ID returned by login.
type BearerAuth struct {
	Authorization string `header:"Authorization" doc:"Bearer token returned by login"`
}

// UserID returns the user ID carried by the bearer token, or a 401 error
// when the header is missing or malformed.
func (a *BearerAuth) UserID() (string, error) {
	token, ok := strings.CutPrefix(strings.TrimSpace(a.Authorization), "Bearer ")
	if !ok {
		return "", huma.Error401Unauthorized("missing bearer token")
	}

	id, err := uuid.Parse(strings.TrimSpace(token))
	if err != nil {
		return "", huma.Error401Unauthorized("invalid bearer token")
	}

	return id.String(), nil
}
