package service

import (
	"context"
	"errors"
	"guestpost-marketplace/internal/model"
	"strings"
	"testing"
)

func TestInvitePublisher(t *testing.T) {
	invitations := newFakeInvitationRepo()
	publishers := newFakePublisherRepo()
	mailer := &fakeMailClient{}
	svc := NewInvitationService(invitations, publishers, mailer, "https://app.linkmarket.io")

	invitation, err := svc.InvitePublisher(context.Background(), "owner@blog.example", "Blog Owner")
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if invitation.Status != "sent" || invitation.SentAt == nil {
		t.Errorf("invitation not marked sent: %+v", invitation)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].to != "owner@blog.example" {
		t.Fatalf("unexpected mail calls %+v", mailer.sent)
	}
	if !strings.Contains(mailer.sent[0].acceptURL, invitation.Token) {
		t.Errorf("accept url %q does not carry token %q", mailer.sent[0].acceptURL, invitation.Token)
	}
}

func TestInvitePublisherAlreadyRegistered(t *testing.T) {
	publishers := newFakePublisherRepo(&model.Publisher{
		ID:           "pub-1",
		ContactEmail: "owner@blog.example",
	})
	svc := NewInvitationService(newFakeInvitationRepo(), publishers, &fakeMailClient{}, "https://app.linkmarket.io")

	if _, err := svc.InvitePublisher(context.Background(), "owner@blog.example", "Blog Owner"); err == nil {
		t.Fatal("want error for already-registered publisher")
	}
}

func TestInvitePublisherMailFailure(t *testing.T) {
	mailer := &fakeMailClient{sendErr: errors.New("smtp down")}
	svc := NewInvitationService(newFakeInvitationRepo(), newFakePublisherRepo(), mailer, "https://app.linkmarket.io")

	if _, err := svc.InvitePublisher(context.Background(), "owner@blog.example", "Blog Owner"); err == nil {
		t.Fatal("want error when mail delivery fails")
	}
}

func TestAcceptInvitation(t *testing.T) {
	invitations := newFakeInvitationRepo(&model.Invitation{
		ID:             "inv-1",
		PublisherEmail: "owner@blog.example",
		PublisherName:  "Blog Owner",
		Token:          "tok-1",
		Status:         "sent",
	})
	publishers := newFakePublisherRepo()
	svc := NewInvitationService(invitations, publishers, &fakeMailClient{}, "https://app.linkmarket.io")

	publisher, err := svc.AcceptInvitation(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if publisher.ContactEmail != "owner@blog.example" || publisher.Status != "active" {
		t.Errorf("unexpected publisher %+v", publisher)
	}
	if len(invitations.accepted) != 1 || invitations.accepted[0] != "inv-1" {
		t.Errorf("invitation not marked accepted: %+v", invitations.accepted)
	}
}

func TestAcceptInvitationTwice(t *testing.T) {
	invitations := newFakeInvitationRepo(&model.Invitation{
		ID:     "inv-1",
		Token:  "tok-1",
		Status: "accepted",
	})
	svc := NewInvitationService(invitations, newFakePublisherRepo(), &fakeMailClient{}, "https://app.linkmarket.io")

	if _, err := svc.AcceptInvitation(context.Background(), "tok-1"); err == nil {
		t.Fatal("want error for already-accepted invitation")
	}
}
