package service

import (
	"context"
	"errors"
	"fmt"
	"guestpost-marketplace/internal/client"
	"guestpost-marketplace/internal/model"
	"guestpost-marketplace/internal/repository"
	"time"

	"github.com/google/uuid"
)

type InvitationService interface {
	InvitePublisher(ctx context.Context, email, name string) (*model.Invitation, error)
	AcceptInvitation(ctx context.Context, token string) (*model.Publisher, error)
}

type invitationServiceImpl struct {
	invitationRepo repository.InvitationRepository
	publisherRepo  repository.PublisherRepository
	mailClient     client.MailClient
	baseURL        string
	now            func() time.Time
}

func NewInvitationService(
	invitationRepo repository.InvitationRepository,
	publisherRepo repository.PublisherRepository,
	mailClient client.MailClient,
	baseURL string,
) InvitationService {
	return &invitationServiceImpl{
		invitationRepo: invitationRepo,
		publisherRepo:  publisherRepo,
		mailClient:     mailClient,
		baseURL:        baseURL,
		now:            time.Now,
	}
}

func (s *invitationServiceImpl) InvitePublisher(ctx context.Context, email, name string) (*model.Invitation, error) {
	if email == "" {
		return nil, fmt.Errorf("publisher email is required")
	}

	_, err := s.publisherRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("publisher %s is already registered", email)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	invitation := &model.Invitation{
		ID:             uuid.NewString(),
		PublisherEmail: email,
		PublisherName:  name,
		Token:          uuid.NewString(),
		Status:         "pending",
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	acceptURL := fmt.Sprintf("%s/api/invitations/%s/accept", s.baseURL, invitation.Token)
	if err := s.mailClient.SendPublisherInvitation(email, name, acceptURL); err != nil {
		return nil, fmt.Errorf("send invitation: %w", err)
	}

	sentAt := s.now()
	if err := s.invitationRepo.MarkSent(ctx, invitation.ID, sentAt); err != nil {
		return nil, err
	}
	invitation.Status = "sent"
	invitation.SentAt = &sentAt

	return invitation, nil
}

func (s *invitationServiceImpl) AcceptInvitation(ctx context.Context, token string) (*model.Publisher, error) {
	invitation, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if invitation.Status == "accepted" {
		return nil, fmt.Errorf("invitation already accepted")
	}

	publisher := &model.Publisher{
		ID:           uuid.NewString(),
		Name:         invitation.PublisherName,
		ContactEmail: invitation.PublisherEmail,
		Status:       "active",
	}
	if err := s.publisherRepo.Create(ctx, publisher); err != nil {
		return nil, fmt.Errorf("create publisher: %w", err)
	}

	if err := s.invitationRepo.MarkAccepted(ctx, invitation.ID, s.now()); err != nil {
		return nil, err
	}

	return publisher, nil
}
