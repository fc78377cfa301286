package auth

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	Issue(userID string) (string, error)
	Verify(tokenString string) (string, error)
}
