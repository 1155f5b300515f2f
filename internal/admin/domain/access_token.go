package domain

import "time"

// AccessToken is the audit record of an issued access-token secret. Only
// an argon2id hash of the secret is stored; the plaintext is delivered
// sealed to the requesting client.
type AccessToken struct {
	ID        string
	UserID    string
	TokenHash string
	CreatedAt time.Time
}

// IssuedToken is the result of a token issuance: the resolved target user
// and the sealed secret ready for transport.
type IssuedToken struct {
	UserID               string
	EncryptedAccessToken string
}
