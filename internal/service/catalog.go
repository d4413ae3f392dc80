package service

import (
	"context"
	"fmt"
	"guestpost-marketplace/internal/model"
	"guestpost-marketplace/internal/repository"

	"github.com/google/uuid"
)

// CatalogService manages the site inventory side of the marketplace:
// publisher websites, their offerings, and advertiser requests for
// vetted inventory.
type CatalogService interface {
	RegisterWebsite(ctx context.Context, publisherID, domain string, domainRating int32, monthlyTraffic int64) (*model.Website, error)
	VetWebsite(ctx context.Context, websiteID string, approve bool) error
	ListVettedWebsites(ctx context.Context) ([]*model.Website, error)
	CreateOffering(ctx context.Context, websiteID, offeringType string, retailPriceCents int64, currency string, turnaroundDays int32) (*model.Offering, error)
	ListOfferings(ctx context.Context, websiteID string) ([]*model.Offering, error)
	OpenVettedSiteRequest(ctx context.Context, accountID, niche string, minDomainRating int32, maxPriceCents int64) (*model.VettedSiteRequest, error)
	ListOpenRequests(ctx context.Context) ([]*model.VettedSiteRequest, error)
	FulfillRequest(ctx context.Context, requestID, notes string) error
}

type catalogServiceImpl struct {
	websiteRepo   repository.WebsiteRepository
	offeringRepo  repository.OfferingRepository
	publisherRepo repository.PublisherRepository
	requestRepo   repository.VettedSiteRequestRepository
}

func NewCatalogService(
	websiteRepo repository.WebsiteRepository,
	offeringRepo repository.OfferingRepository,
	publisherRepo repository.PublisherRepository,
	requestRepo repository.VettedSiteRequestRepository,
) CatalogService {
	return &catalogServiceImpl{
		websiteRepo:   websiteRepo,
		offeringRepo:  offeringRepo,
		publisherRepo: publisherRepo,
		requestRepo:   requestRepo,
	}
}

func (s *catalogServiceImpl) RegisterWebsite(ctx context.Context, publisherID, domain string, domainRating int32, monthlyTraffic int64) (*model.Website, error) {
	if _, err := s.publisherRepo.Get(ctx, publisherID); err != nil {
		return nil, err
	}
	if domain == "" {
		return nil, fmt.Errorf("domain is required")
	}

	website := &model.Website{
		ID:             uuid.NewString(),
		PublisherID:    publisherID,
		Domain:         domain,
		DomainRating:   domainRating,
		MonthlyTraffic: monthlyTraffic,
		Status:         model.WebsiteStatusPending,
	}
	if err := s.websiteRepo.Create(ctx, website); err != nil {
		return nil, fmt.Errorf("create website: %w", err)
	}

	return website, nil
}

func (s *catalogServiceImpl) VetWebsite(ctx context.Context, websiteID string, approve bool) error {
	status := model.WebsiteStatusRejected
	if approve {
		status = model.WebsiteStatusVetted
	}

	return s.websiteRepo.UpdateStatus(ctx, websiteID, status)
}

func (s *catalogServiceImpl) ListVettedWebsites(ctx context.Context) ([]*model.Website, error) {
	return s.websiteRepo.ListByStatus(ctx, model.WebsiteStatusVetted)
}

func (s *catalogServiceImpl) CreateOffering(ctx context.Context, websiteID, offeringType string, retailPriceCents int64, currency string, turnaroundDays int32) (*model.Offering, error) {
	if _, err := s.websiteRepo.Get(ctx, websiteID); err != nil {
		return nil, err
	}
	if offeringType != model.OrderTypeGuestPost && offeringType != model.OrderTypeNicheEdit {
		return nil, fmt.Errorf("unknown offering type %q", offeringType)
	}
	if retailPriceCents <= 0 {
		return nil, fmt.Errorf("retail price must be positive")
	}
	if currency == "" {
		currency = "usd"
	}

	offering := &model.Offering{
		ID:               uuid.NewString(),
		WebsiteID:        websiteID,
		Type:             offeringType,
		RetailPriceCents: retailPriceCents,
		Currency:         currency,
		TurnaroundDays:   turnaroundDays,
		Active:           true,
	}
	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, fmt.Errorf("create offering: %w", err)
	}

	return offering, nil
}

func (s *catalogServiceImpl) ListOfferings(ctx context.Context, websiteID string) ([]*model.Offering, error) {
	return s.offeringRepo.ListActiveByWebsite(ctx, websiteID)
}

func (s *catalogServiceImpl) OpenVettedSiteRequest(ctx context.Context, accountID, niche string, minDomainRating int32, maxPriceCents int64) (*model.VettedSiteRequest, error) {
	request := &model.VettedSiteRequest{
		ID:              uuid.NewString(),
		AccountID:       accountID,
		Niche:           niche,
		MinDomainRating: minDomainRating,
		MaxPriceCents:   maxPriceCents,
		Status:          "open",
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create vetted-site request: %w", err)
	}

	return request, nil
}

func (s *catalogServiceImpl) ListOpenRequests(ctx context.Context) ([]*model.VettedSiteRequest, error) {
	return s.requestRepo.ListByStatus(ctx, "open")
}

func (s *catalogServiceImpl) FulfillRequest(ctx context.Context, requestID, notes string) error {
	return s.requestRepo.UpdateStatus(ctx, requestID, "fulfilled", notes)
}
