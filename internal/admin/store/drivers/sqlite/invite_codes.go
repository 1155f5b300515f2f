package sqlite

import (
	"context"

	"github.com/aussiebroadwan/collab/internal/admin/domain"
)

type inviteCodesRepo struct {
	db dbtx
}

const inviteCodeColumns = `code, owner_user_id, allowed_usage_count, remaining_count, created_at, updated_at`

func (r *inviteCodesRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]domain.InviteCode, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteCodeColumns+` FROM invite_codes WHERE owner_user_id = ? ORDER BY created_at, code`,
		ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := []domain.InviteCode{}
	for rows.Next() {
		var ic domain.InviteCode
		if err := rows.Scan(
			&ic.Code,
			&ic.OwnerUserID,
			&ic.AllowedUsageCount,
			&ic.RemainingCount,
			&ic.CreatedAt,
			&ic.UpdatedAt,
		); err != nil {
			return nil, err
		}
		codes = append(codes, ic)
	}
	return codes, rows.Err()
}

func (r *inviteCodesRepo) CreateInviteCode(ctx context.Context, ic domain.InviteCode) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invite_codes (code, owner_user_id, allowed_usage_count, remaining_count)
		 VALUES (?, ?, ?, ?)`,
		ic.Code, ic.OwnerUserID, ic.AllowedUsageCount, ic.RemainingCount)
	return mapConstraint(err)
}

func (r *inviteCodesRepo) SetRemainingCount(ctx context.Context, code string, remaining int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invite_codes SET remaining_count = ?, updated_at = CURRENT_TIMESTAMP WHERE code = ?`,
		remaining, code)
	if err != nil {
		return err
	}
	return requireRow(res)
}
