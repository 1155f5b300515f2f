package adminsdk

// User is the wire representation of a directory record.
type User struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Admin bool   `json:"admin"`
}

// InviteCode is the wire representation of an invite code.
type InviteCode struct {
	Code              string `json:"code"`
	OwnerUserID       string `json:"owner_user_id"`
	AllowedUsageCount int    `json:"allowed_usage_count"`
	RemainingCount    int    `json:"remaining_count"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Login string `json:"login"`
	Admin bool   `json:"admin"`
}

// UpdateUserRequest is the body of PUT /users/{id}.
type UpdateUserRequest struct {
	Admin bool `json:"admin"`
}

// CreateInviteCodeRequest is the body of POST /users/{id}/invite_codes.
type CreateInviteCodeRequest struct {
	AllowedUsageCount int `json:"allowed_usage_count"`
}

// UpdateInviteCodeRequest is the body of PUT /invite_codes/{code}.
type UpdateInviteCodeRequest struct {
	RemainingCount int `json:"remaining_count"`
}

// CreateAccessTokenResponse is the body returned by
// GET /users/{login}/access_tokens. EncryptedAccessToken is the
// RSA-OAEP-sealed secret, base64 encoded; decrypting it with the private
// key matching the supplied public key yields a 43-character base64url
// secret.
type CreateAccessTokenResponse struct {
	UserID               string `json:"user_id"`
	EncryptedAccessToken string `json:"encrypted_access_token"`
}

// PanicReport is the body of POST /panic.
type PanicReport struct {
	Version string `json:"version"`
	Text    string `json:"text"`
}

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
