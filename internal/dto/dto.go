package dto

type OrderGroupSpec struct {
	ClientBrand   string `json:"client_brand"`
	TargetPageURL string `json:"target_page_url"`
}

type CreateOrderRequest struct {
	Type   string            `json:"type"`
	Groups []*OrderGroupSpec `json:"groups"`
}

type AssignSubmissionRequest struct {
	GroupID    string `json:"group_id"`
	OfferingID string `json:"offering_id"`
}

type UpdateSubmissionStatusRequest struct {
	Status string `json:"status"`
}

type RecordPublishedURLRequest struct {
	PublishedURL string `json:"published_url"`
}

type PaymentIntentResponse struct {
	OrderID         string `json:"order_id"`
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	AmountCents     int64  `json:"amount_cents"`
}

type ExecuteRefundRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Reason      string `json:"reason"`
}

type ExecuteRefundResponse struct {
	OrderID        string `json:"order_id"`
	StripeRefundID string `json:"stripe_refund_id"`
	AmountCents    int64  `json:"amount_cents"`
}

type BulkRefundRequest struct {
	OrderIDs []string `json:"order_ids"`
}

type InvitePublisherRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RegisterWebsiteRequest struct {
	PublisherID    string `json:"publisher_id"`
	Domain         string `json:"domain"`
	DomainRating   int32  `json:"domain_rating"`
	MonthlyTraffic int64  `json:"monthly_traffic"`
}

type CreateOfferingRequest struct {
	Type             string `json:"type"`
	RetailPriceCents int64  `json:"retail_price_cents"`
	Currency         string `json:"currency"`
	TurnaroundDays   int32  `json:"turnaround_days"`
}

type OpenVettedSiteRequest struct {
	Niche           string `json:"niche"`
	MinDomainRating int32  `json:"min_domain_rating"`
	MaxPriceCents   int64  `json:"max_price_cents"`
}

type UpsertWorkflowRequest struct {
	SubmissionID    string `json:"submission_id"`
	Status          string `json:"status"`
	CurrentStepSlug string `json:"current_step_slug"`
}
