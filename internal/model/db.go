package model

import "time"

// Order status constants.
const (
	OrderStatusCreated    = "created"
	OrderStatusConfigured = "configured"
	OrderStatusPaid       = "paid"
	OrderStatusFulfilled  = "fulfilled"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// Order type constants.
const (
	OrderTypeGuestPost = "guest_post"
	OrderTypeNicheEdit = "niche_edit"
)

// Site submission status constants.
const (
	SubmissionStatusPending        = "pending"
	SubmissionStatusSubmitted      = "submitted"
	SubmissionStatusClientApproved = "client_approved"
	SubmissionStatusClientRejected = "client_rejected"
)

// Website status constants.
const (
	WebsiteStatusPending  = "pending"
	WebsiteStatusVetted   = "vetted"
	WebsiteStatusRejected = "rejected"
)

// Workflow status constants.
const (
	WorkflowStatusNotStarted = "not_started"
	WorkflowStatusInProgress = "in_progress"
	WorkflowStatusCompleted  = "completed"
)

// Workflow step slugs used as completion milestones.
const (
	StepContentAudit = "content-audit"
	StepArticleDraft = "article-draft"
	StepFinalPolish  = "final-polish"
)

type Account struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	Name      string `gorm:"size:128;not null"`
	Email     string `gorm:"size:128;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Publisher struct {
	ID           string `gorm:"primaryKey;size:64;not null"`
	Name         string `gorm:"size:128;not null"`
	ContactEmail string `gorm:"size:128;uniqueIndex;not null"`
	Status       string `gorm:"size:32;index;not null"` // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Website struct {
	ID string `gorm:"primaryKey;size:64;not null"`
	// FK → publisher.id
	PublisherID    string `gorm:"size:64;index;not null"`
	Domain         string `gorm:"size:255;uniqueIndex;not null"`
	DomainRating   int32
	MonthlyTraffic int64
	Status         string `gorm:"size:32;index;not null"` // pending, vetted, rejected
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Offering struct {
	ID string `gorm:"primaryKey;size:64;not null"`
	// FK → website.id
	WebsiteID        string `gorm:"size:64;index;not null"`
	Type             string `gorm:"size:32;index;not null"` // guest_post, niche_edit
	RetailPriceCents int64  `gorm:"not null"`
	Currency         string `gorm:"size:8;not null"`
	TurnaroundDays   int32
	Active           bool `gorm:"index;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Order struct {
	ID string `gorm:"primaryKey;size:64;not null"`
	// FK → account.id
	AccountID       string `gorm:"size:64;index;not null"`
	Type            string `gorm:"size:32;index;not null"`
	Status          string `gorm:"size:32;index;not null"`
	TotalCents      int64  `gorm:"not null"`
	Currency        string `gorm:"size:8;not null"`
	PaymentIntentID string `gorm:"size:64;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Groups []OrderGroup `gorm:"foreignKey:OrderID"`
}

type OrderGroup struct {
	ID string `gorm:"primaryKey;size:64;not null"`
	// FK → order.id
	OrderID       string `gorm:"size:64;index;not null"`
	ClientBrand   string `gorm:"size:128;not null"`
	TargetPageURL string `gorm:"size:512"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Submissions []SiteSubmission `gorm:"foreignKey:GroupID"`
}

type SiteSubmission struct {
	ID string `gorm:"primaryKey;size:64;not null"`
	// FK → order_group.id
	GroupID string `gorm:"size:64;index;not null"`
	// FK → website.id
	WebsiteID string `gorm:"size:64;index;not null"`
	Domain    string `gorm:"size:255;not null"`
	// FK → offering.id
	OfferingID string `gorm:"size:64;index;not null"`
	// Price locked in when the domain is assigned. Never updated
	// afterwards, so refund math stays stable against live price changes.
	RetailPriceCents int64   `gorm:"not null"`
	SubmissionStatus string  `gorm:"size:32;index;not null"`
	WorkflowID       *string `gorm:"size:64;index"`
	PublishedURL     string  `gorm:"size:512"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Workflow mirrors the production-tracking system's state for one
// submission. The order and refund paths only read it; the ops upsert
// endpoint stands in for the external tracker.
type Workflow struct {
	ID string `gorm:"primaryKey;size:64;not null"`
	// FK → site_submission.id
	SubmissionID    string `gorm:"size:64;uniqueIndex;not null"`
	Status          string `gorm:"size:32;index;not null"`
	CurrentStepSlug string `gorm:"size:64"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Invitation struct {
	ID             string `gorm:"primaryKey;size:64;not null"`
	PublisherEmail string `gorm:"size:128;index;not null"`
	PublisherName  string `gorm:"size:128"`
	Token          string `gorm:"size:64;uniqueIndex;not null"`
	Status         string `gorm:"size:32;index;not null"` // pending, sent, accepted, expired
	SentAt         *time.Time
	AcceptedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VettedSiteRequest struct {
	ID string `gorm:"primaryKey;size:64;not null"`
	// FK → account.id
	AccountID       string `gorm:"size:64;index;not null"`
	Niche           string `gorm:"size:128"`
	MinDomainRating int32
	MaxPriceCents   int64
	Status          string `gorm:"size:32;index;not null"` // open, in_review, fulfilled
	Notes           string `gorm:"size:1024"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
