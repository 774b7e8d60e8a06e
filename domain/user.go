package domain

import "time"

// User is an account row from the users table. The password column holds an
// opaque SCRAM hash that is only ever inspected by the in-database
// verify_scram_hash function, never compared in-process.
type User struct {
	ID         int64      `json:"userid"`
	Login      string     `json:"login"`
	Password   string     `json:"-"`
	Role       Role       `json:"tipo"`
	OriginalID int64      `json:"id_original"`
	Active     bool       `json:"ativo"`
	LastLogin  *time.Time `json:"ultimo_login,omitempty"`
}

func (u *User) IsActive() bool {
	return u != nil && u.Active
}
