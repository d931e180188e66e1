package auth

// Identity is the authenticated caller carried by an access token.
type Identity struct {
	UserID int64
	Role   string
	Name   string
}
