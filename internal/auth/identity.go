package auth

import (
	"net/http"
	"strings"

	"github.com/vendordesk/vendordesk/internal/shared"
)

// IdentityFunc resolves the caller's user id from a request. It reports false
// when the request carries no valid identity.
type IdentityFunc func(r *http.Request) (string, bool)

// Resolver resolves identities from bearer tokens and cookie sessions.
type Resolver struct {
	tokens *TokenIssuer
}

// NewResolver constructs a Resolver. A nil issuer disables bearer tokens.
func NewResolver(tokens *TokenIssuer) *Resolver {
	return &Resolver{tokens: tokens}
}

// Identity implements IdentityFunc. A request that presents a bearer token is
// judged by that token alone.
func (res *Resolver) Identity(r *http.Request) (string, bool) {
	if token, ok := BearerToken(r); ok {
		if res.tokens == nil {
			return "", false
		}
		userID, err := res.tokens.Verify(token)
		if err != nil {
			return "", false
		}
		return userID, true
	}
	sess := shared.SessionFromContext(r.Context())
	if sess == nil || sess.User() == "" {
		return "", false
	}
	return sess.User(), true
}

// BearerToken extracts the token from an Authorization: Bearer header.
func BearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	return strings.TrimSpace(token), true
}
