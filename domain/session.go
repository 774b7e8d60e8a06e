package domain

// Session is the client-held proof of authentication. There is no server-side
// session table in the default deployment: the whole structure travels inside
// a signed cookie, so revocation happens by re-checking the user's active
// flag, not by deleting a token.
type Session struct {
	UserID        int64  `json:"userid"`
	Login         string `json:"login"`
	Role          Role   `json:"tipo"`
	OriginalID    int64  `json:"id_original"`
	Authenticated bool   `json:"is_authenticated"`
}

// NewSession mints an authenticated session for a user. This is the only
// place the authenticated flag is set to true.
func NewSession(user *User) *Session {
	if user == nil {
		return nil
	}
	return &Session{
		UserID:        user.ID,
		Login:         user.Login,
		Role:          user.Role,
		OriginalID:    user.OriginalID,
		Authenticated: true,
	}
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Authenticated
}
