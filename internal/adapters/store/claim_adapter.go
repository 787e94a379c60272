package store

import (
	"context"
	"time"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// ClaimAdapter implements repositories.ClaimRepository on the flat-file
// store. Approval touches three collections (claim, station, user) in one
// write, which the single store lock makes atomic.
type ClaimAdapter struct {
	client *jsonfile.Client
}

// NewClaimAdapter creates a new claim adapter.
func NewClaimAdapter(client *jsonfile.Client) repositories.ClaimRepository {
	return &ClaimAdapter{client: client}
}

// Create appends a pending claim after checking its references exist.
func (a *ClaimAdapter) Create(ctx context.Context, claim *entities.Claim) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		if findStation(db, claim.StationID) == nil {
			return apperrors.NewNotFoundError("station not found")
		}
		for _, c := range db.Claims {
			if c.StationID == claim.StationID && c.UserID == claim.UserID && c.Status == entities.ClaimStatusPending {
				return apperrors.NewConflictError("a pending claim for this station already exists")
			}
		}
		clone := *claim
		db.Claims = append(db.Claims, &clone)
		return nil
	})
}

// GetByID returns the claim with the given id.
func (a *ClaimAdapter) GetByID(ctx context.Context, id string) (*entities.Claim, error) {
	var found *entities.Claim
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, c := range db.Claims {
			if c.ID == id {
				clone := *c
				found = &clone
				return nil
			}
		}
		return apperrors.NewNotFoundError("claim not found")
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ListByUser returns the user's claims in insertion order.
func (a *ClaimAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, c := range db.Claims {
			if c.UserID == userID {
				clone := *c
				claims = append(claims, &clone)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// List returns claims, optionally filtered by status.
func (a *ClaimAdapter) List(ctx context.Context, status string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, c := range db.Claims {
			if status != "" && c.Status != status {
				continue
			}
			clone := *c
			claims = append(claims, &clone)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Resolve moves a pending claim to APPROVED or REJECTED. On approval the
// station gains the claimant as verified owner and the claimant is promoted
// to the owner role unless already owner or admin.
func (a *ClaimAdapter) Resolve(ctx context.Context, id, status, adminComment string) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		var claim *entities.Claim
		for _, c := range db.Claims {
			if c.ID == id {
				claim = c
				break
			}
		}
		if claim == nil {
			return apperrors.NewNotFoundError("claim not found")
		}
		if claim.Status != entities.ClaimStatusPending {
			return apperrors.NewConflictError("claim is already resolved")
		}

		if status == entities.ClaimStatusApproved {
			station := findStation(db, claim.StationID)
			if station == nil {
				return apperrors.NewNotFoundError("claimed station no longer exists")
			}
			station.OwnerID = claim.UserID
			station.Verified = true
			station.UpdatedAt = time.Now().UTC()

			for _, u := range db.Users {
				if u.ID == claim.UserID && u.Role == entities.RoleUser {
					u.Role = entities.RoleOwner
				}
			}
		}

		claim.Status = status
		claim.AdminComment = adminComment
		claim.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func findStation(db *jsonfile.Database, id string) *entities.Station {
	for _, s := range db.Stations {
		if s.ID == id {
			return s
		}
	}
	return nil
}
