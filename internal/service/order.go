package service

import (
	"context"
	"fmt"
	"guestpost-marketplace/internal/dto"
	"guestpost-marketplace/internal/model"
	"guestpost-marketplace/internal/repository"

	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, accountID, orderType string, groups []*dto.OrderGroupSpec) (*model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	ListOrders(ctx context.Context, accountID string) ([]*model.Order, error)
	AssignSubmission(ctx context.Context, groupID, offeringID string) (*model.SiteSubmission, error)
	UpdateSubmissionStatus(ctx context.Context, submissionID, status string) error
	RecordPublishedURL(ctx context.Context, submissionID, publishedURL string) error
}

type orderServiceImpl struct {
	orderRepo    repository.OrderRepository
	offeringRepo repository.OfferingRepository
	websiteRepo  repository.WebsiteRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	offeringRepo repository.OfferingRepository,
	websiteRepo repository.WebsiteRepository,
) OrderService {
	return &orderServiceImpl{
		orderRepo:    orderRepo,
		offeringRepo: offeringRepo,
		websiteRepo:  websiteRepo,
	}
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, accountID, orderType string, groups []*dto.OrderGroupSpec) (*model.Order, error) {
	if orderType != model.OrderTypeGuestPost && orderType != model.OrderTypeNicheEdit {
		return nil, fmt.Errorf("unknown order type %q", orderType)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("order needs at least one group")
	}

	order := &model.Order{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Type:      orderType,
		Status:    model.OrderStatusCreated,
		Currency:  "usd",
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	for _, spec := range groups {
		group := &model.OrderGroup{
			ID:            uuid.NewString(),
			OrderID:       order.ID,
			ClientBrand:   spec.ClientBrand,
			TargetPageURL: spec.TargetPageURL,
		}
		if err := s.orderRepo.CreateGroup(ctx, group); err != nil {
			return nil, fmt.Errorf("create order group: %w", err)
		}
		order.Groups = append(order.Groups, *group)
	}

	return order, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orderRepo.GetWithLineItems(ctx, orderID)
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, accountID string) ([]*model.Order, error) {
	return s.orderRepo.ListByAccount(ctx, accountID)
}

// AssignSubmission creates a placement line item for a group from an
// active offering. The offering's retail price is copied onto the
// submission here and never touched again, so refund math stays pinned
// to what the client actually paid.
func (s *orderServiceImpl) AssignSubmission(ctx context.Context, groupID, offeringID string) (*model.SiteSubmission, error) {
	group, err := s.orderRepo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	offering, err := s.offeringRepo.Get(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	if !offering.Active {
		return nil, fmt.Errorf("offering %s is not active", offeringID)
	}

	website, err := s.websiteRepo.Get(ctx, offering.WebsiteID)
	if err != nil {
		return nil, err
	}
	if website.Status != model.WebsiteStatusVetted {
		return nil, fmt.Errorf("website %s is not vetted", website.Domain)
	}

	submission := &model.SiteSubmission{
		ID:               uuid.NewString(),
		GroupID:          group.ID,
		WebsiteID:        website.ID,
		Domain:           website.Domain,
		OfferingID:       offering.ID,
		RetailPriceCents: offering.RetailPriceCents,
		SubmissionStatus: model.SubmissionStatusPending,
	}
	if err := s.orderRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	return submission, nil
}

func (s *orderServiceImpl) UpdateSubmissionStatus(ctx context.Context, submissionID, status string) error {
	switch status {
	case model.SubmissionStatusPending,
		model.SubmissionStatusSubmitted,
		model.SubmissionStatusClientApproved,
		model.SubmissionStatusClientRejected:
	default:
		return fmt.Errorf("unknown submission status %q", status)
	}

	return s.orderRepo.UpdateSubmissionStatus(ctx, submissionID, status)
}

func (s *orderServiceImpl) RecordPublishedURL(ctx context.Context, submissionID, publishedURL string) error {
	if publishedURL == "" {
		return fmt.Errorf("published url is required")
	}

	return s.orderRepo.SetPublishedURL(ctx, submissionID, publishedURL)
}
