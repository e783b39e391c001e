package domain

// Principal is the authenticated caller: the tenant account and its contact email.
type Principal struct {
	AccountID string
	Email     string
}

// TokenVerifier verifies a bearer token and returns the authenticated principal.
type TokenVerifier interface {
	Verify(token string) (Principal, error)
}

// TokenIssuer issues tokens (e.g. JWT) for an account.
type TokenIssuer interface {
	Issue(p Principal) (string, error)
}
