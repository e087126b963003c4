package output

// TokenIssuer interface - Output port
// Signs the session token handed out on login
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}
