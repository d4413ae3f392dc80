package service

import (
	"context"
	"fmt"
	"guestpost-marketplace/internal/client"
	"guestpost-marketplace/internal/model"
	"guestpost-marketplace/internal/repository"
	"time"
)

// Fakes embed the repository interfaces so each test only implements
// the methods it actually drives; anything else panics loudly.

type fakeOrderRepo struct {
	repository.OrderRepository
	orders   map[string]*model.Order
	statuses map[string]string
}

func newFakeOrderRepo(orders ...*model.Order) *fakeOrderRepo {
	byID := make(map[string]*model.Order)
	for _, order := range orders {
		byID[order.ID] = order
	}
	return &fakeOrderRepo{
		orders:   byID,
		statuses: make(map[string]string),
	}
}

func (f *fakeOrderRepo) GetWithLineItems(ctx context.Context, orderID string) (*model.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	order, ok := f.orders[orderID]
	if !ok {
		return repository.ErrNotFound
	}
	order.Status = status
	f.statuses[orderID] = status
	return nil
}

func (f *fakeOrderRepo) SetPaymentIntent(ctx context.Context, orderID, paymentIntentID string, totalCents int64) error {
	order, ok := f.orders[orderID]
	if !ok {
		return repository.ErrNotFound
	}
	order.PaymentIntentID = paymentIntentID
	order.TotalCents = totalCents
	return nil
}

func (f *fakeOrderRepo) GetGroup(ctx context.Context, groupID string) (*model.OrderGroup, error) {
	for _, order := range f.orders {
		for i := range order.Groups {
			if order.Groups[i].ID == groupID {
				return &order.Groups[i], nil
			}
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrderRepo) CreateSubmission(ctx context.Context, submission *model.SiteSubmission) error {
	for _, order := range f.orders {
		for i := range order.Groups {
			if order.Groups[i].ID == submission.GroupID {
				order.Groups[i].Submissions = append(order.Groups[i].Submissions, *submission)
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

type fakeWebsiteRepo struct {
	repository.WebsiteRepository
	websites map[string]*model.Website
}

func newFakeWebsiteRepo(websites ...*model.Website) *fakeWebsiteRepo {
	byID := make(map[string]*model.Website)
	for _, w := range websites {
		byID[w.ID] = w
	}
	return &fakeWebsiteRepo{websites: byID}
}

func (f *fakeWebsiteRepo) Get(ctx context.Context, websiteID string) (*model.Website, error) {
	website, ok := f.websites[websiteID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return website, nil
}

type fakeOfferingRepo struct {
	repository.OfferingRepository
	offerings map[string]*model.Offering
}

func newFakeOfferingRepo(offerings ...*model.Offering) *fakeOfferingRepo {
	byID := make(map[string]*model.Offering)
	for _, o := range offerings {
		byID[o.ID] = o
	}
	return &fakeOfferingRepo{offerings: byID}
}

func (f *fakeOfferingRepo) Get(ctx context.Context, offeringID string) (*model.Offering, error) {
	offering, ok := f.offerings[offeringID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return offering, nil
}

type fakeWorkflowRepo struct {
	repository.WorkflowRepository
	workflows map[string]*model.Workflow
}

func newFakeWorkflowRepo(workflows ...*model.Workflow) *fakeWorkflowRepo {
	byID := make(map[string]*model.Workflow)
	for _, wf := range workflows {
		byID[wf.ID] = wf
	}
	return &fakeWorkflowRepo{workflows: byID}
}

func (f *fakeWorkflowRepo) Get(ctx context.Context, workflowID string) (*model.Workflow, error) {
	wf, ok := f.workflows[workflowID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return wf, nil
}

type fakePublisherRepo struct {
	repository.PublisherRepository
	byEmail map[string]*model.Publisher
	created []*model.Publisher
}

func newFakePublisherRepo(publishers ...*model.Publisher) *fakePublisherRepo {
	byEmail := make(map[string]*model.Publisher)
	for _, p := range publishers {
		byEmail[p.ContactEmail] = p
	}
	return &fakePublisherRepo{byEmail: byEmail}
}

func (f *fakePublisherRepo) GetByEmail(ctx context.Context, email string) (*model.Publisher, error) {
	publisher, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return publisher, nil
}

func (f *fakePublisherRepo) Create(ctx context.Context, publisher *model.Publisher) error {
	f.byEmail[publisher.ContactEmail] = publisher
	f.created = append(f.created, publisher)
	return nil
}

type fakeInvitationRepo struct {
	repository.InvitationRepository
	byToken  map[string]*model.Invitation
	sent     []string
	accepted []string
}

func newFakeInvitationRepo(invitations ...*model.Invitation) *fakeInvitationRepo {
	byToken := make(map[string]*model.Invitation)
	for _, inv := range invitations {
		byToken[inv.Token] = inv
	}
	return &fakeInvitationRepo{byToken: byToken}
}

func (f *fakeInvitationRepo) Create(ctx context.Context, invitation *model.Invitation) error {
	f.byToken[invitation.Token] = invitation
	return nil
}

func (f *fakeInvitationRepo) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	invitation, ok := f.byToken[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return invitation, nil
}

func (f *fakeInvitationRepo) MarkSent(ctx context.Context, invitationID string, sentAt time.Time) error {
	f.sent = append(f.sent, invitationID)
	return nil
}

func (f *fakeInvitationRepo) MarkAccepted(ctx context.Context, invitationID string, acceptedAt time.Time) error {
	f.accepted = append(f.accepted, invitationID)
	return nil
}

type stripeCall struct {
	paymentIntentID string
	amountCents     int64
}

type fakeStripeClient struct {
	refunds   []stripeCall
	refundErr error
	intentSeq int
}

func (f *fakeStripeClient) CreatePaymentIntent(ctx context.Context, amountCents int64, orderID string) (*client.PaymentIntentResult, error) {
	f.intentSeq++
	return &client.PaymentIntentResult{
		ID:           fmt.Sprintf("pi_%d", f.intentSeq),
		ClientSecret: fmt.Sprintf("secret_%d", f.intentSeq),
	}, nil
}

func (f *fakeStripeClient) CreateRefund(ctx context.Context, paymentIntentID string, amountCents int64) (string, error) {
	if f.refundErr != nil {
		return "", f.refundErr
	}
	f.refunds = append(f.refunds, stripeCall{paymentIntentID: paymentIntentID, amountCents: amountCents})
	return fmt.Sprintf("re_%d", len(f.refunds)), nil
}

type mailCall struct {
	to        string
	acceptURL string
}

type fakeMailClient struct {
	sent    []mailCall
	sendErr error
}

func (f *fakeMailClient) SendPublisherInvitation(to, name, acceptURL string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, mailCall{to: to, acceptURL: acceptURL})
	return nil
}
