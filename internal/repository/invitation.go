package repository

import (
	"context"
	"errors"
	"guestpost-marketplace/internal/model"
	"time"

	"gorm.io/gorm"
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	GetByToken(ctx context.Context, token string) (*model.Invitation, error)
	MarkSent(ctx context.Context, invitationID string, sentAt time.Time) error
	MarkAccepted(ctx context.Context, invitationID string, acceptedAt time.Time) error
}

type invitationRepoImpl struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepoImpl{
		db: db,
	}
}

func (r *invitationRepoImpl) Create(ctx context.Context, invitation *model.Invitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *invitationRepoImpl) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var invitation model.Invitation
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&invitation).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &invitation, nil
}

func (r *invitationRepoImpl) MarkSent(ctx context.Context, invitationID string, sentAt time.Time) error {
	return r.updateStatus(ctx, invitationID, map[string]interface{}{
		"status":  "sent",
		"sent_at": sentAt,
	})
}

func (r *invitationRepoImpl) MarkAccepted(ctx context.Context, invitationID string, acceptedAt time.Time) error {
	return r.updateStatus(ctx, invitationID, map[string]interface{}{
		"status":      "accepted",
		"accepted_at": acceptedAt,
	})
}

func (r *invitationRepoImpl) updateStatus(ctx context.Context, invitationID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&model.Invitation{}).
		Where("id = ?", invitationID).
		Updates(fields)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
