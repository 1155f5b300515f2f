package domain

import "time"

// InviteCode grants a bounded number of registration uses and is owned by
// an administrative user. AllowedUsageCount is fixed at creation;
// RemainingCount is decremented during redemption (handled elsewhere) and
// may be reset administratively.
type InviteCode struct {
	Code              string
	OwnerUserID       string
	AllowedUsageCount int
	RemainingCount    int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
