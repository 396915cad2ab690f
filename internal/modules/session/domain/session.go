package domain

import "strings"

// TokenKey is the fixed key the bearer token is stored under, matching the
// localStorage entry of the original web client.
const TokenKey = "token"

// Session is the process-wide authentication state. An absent token is an
// explicit state: callers must check Authenticated instead of sending a
// malformed "Bearer <empty>" header.
type Session struct {
	Token string
}

func (s Session) Authenticated() bool {
	return strings.TrimSpace(s.Token) != ""
}

// AuthorizationHeader renders the header value for authenticated requests.
// Only meaningful when Authenticated reports true.
func (s Session) AuthorizationHeader() string {
	return "Bearer " + s.Token
}
