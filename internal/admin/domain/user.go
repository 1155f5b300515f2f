package domain

import "time"

// User is a directory record for someone known to the collaboration
// backend. Login is the unique identifier assigned by the external
// identity provider and is the lookup key on the token-issuance path.
type User struct {
	ID        string
	Login     string
	Admin     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
