package service

import (
	"context"
	"guestpost-marketplace/internal/model"
	"testing"
	"time"
)

func TestAssignSubmissionSnapshotsPrice(t *testing.T) {
	website := &model.Website{
		ID:          "web-1",
		PublisherID: "pub-1",
		Domain:      "techblog.example",
		Status:      model.WebsiteStatusVetted,
	}
	offering := &model.Offering{
		ID:               "off-1",
		WebsiteID:        "web-1",
		Type:             model.OrderTypeGuestPost,
		RetailPriceCents: 25000,
		Active:           true,
	}
	order := &model.Order{
		ID:        "ord-1",
		Status:    model.OrderStatusCreated,
		CreatedAt: time.Now(),
		Groups:    []model.OrderGroup{{ID: "grp-1", OrderID: "ord-1"}},
	}

	orders := newFakeOrderRepo(order)
	svc := NewOrderService(orders, newFakeOfferingRepo(offering), newFakeWebsiteRepo(website))

	submission, err := svc.AssignSubmission(context.Background(), "grp-1", "off-1")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if submission.RetailPriceCents != 25000 {
		t.Errorf("snapshot price = %d, want 25000", submission.RetailPriceCents)
	}
	if submission.Domain != "techblog.example" {
		t.Errorf("domain = %q, want techblog.example", submission.Domain)
	}
	if submission.SubmissionStatus != model.SubmissionStatusPending {
		t.Errorf("status = %q, want pending", submission.SubmissionStatus)
	}

	// A later price change must not move what was locked in.
	offering.RetailPriceCents = 99000

	stored, err := orders.GetWithLineItems(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if got := stored.Groups[0].Submissions[0].RetailPriceCents; got != 25000 {
		t.Errorf("stored snapshot = %d, want 25000 after offering price change", got)
	}
}

func TestAssignSubmissionRejectsUnvettedWebsite(t *testing.T) {
	website := &model.Website{ID: "web-1", Domain: "sketchy.example", Status: model.WebsiteStatusPending}
	offering := &model.Offering{ID: "off-1", WebsiteID: "web-1", RetailPriceCents: 10000, Active: true}
	order := &model.Order{
		ID:     "ord-1",
		Groups: []model.OrderGroup{{ID: "grp-1", OrderID: "ord-1"}},
	}

	svc := NewOrderService(newFakeOrderRepo(order), newFakeOfferingRepo(offering), newFakeWebsiteRepo(website))

	if _, err := svc.AssignSubmission(context.Background(), "grp-1", "off-1"); err == nil {
		t.Fatal("want error for unvetted website")
	}
}

func TestAssignSubmissionRejectsInactiveOffering(t *testing.T) {
	website := &model.Website{ID: "web-1", Domain: "techblog.example", Status: model.WebsiteStatusVetted}
	offering := &model.Offering{ID: "off-1", WebsiteID: "web-1", RetailPriceCents: 10000, Active: false}
	order := &model.Order{
		ID:     "ord-1",
		Groups: []model.OrderGroup{{ID: "grp-1", OrderID: "ord-1"}},
	}

	svc := NewOrderService(newFakeOrderRepo(order), newFakeOfferingRepo(offering), newFakeWebsiteRepo(website))

	if _, err := svc.AssignSubmission(context.Background(), "grp-1", "off-1"); err == nil {
		t.Fatal("want error for inactive offering")
	}
}

func TestUpdateSubmissionStatusValidation(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeOfferingRepo(), newFakeWebsiteRepo())

	if err := svc.UpdateSubmissionStatus(context.Background(), "sub-1", "exploded"); err == nil {
		t.Fatal("want error for unknown status")
	}
}
