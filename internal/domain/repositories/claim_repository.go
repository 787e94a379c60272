package repositories

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// ClaimRepository defines the interface for station ownership claims.
//
// Resolve moves a PENDING claim to APPROVED or REJECTED. Approval also sets
// the station's owner and verification flag and promotes the claimant from
// user to owner, all in the same store write.
type ClaimRepository interface {
	Create(ctx context.Context, claim *entities.Claim) error
	GetByID(ctx context.Context, id string) (*entities.Claim, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Claim, error)
	List(ctx context.Context, status string) ([]*entities.Claim, error)
	Resolve(ctx context.Context, id, status, adminComment string) error
}
