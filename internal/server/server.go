package server

import (
	"guestpost-marketplace/internal/handler"
	custommw "guestpost-marketplace/internal/middleware"
	"guestpost-marketplace/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo             *echo.Echo
	orderHandler     *handler.OrderHandler
	paymentHandler   *handler.PaymentHandler
	refundHandler    *handler.RefundHandler
	websiteHandler   *handler.WebsiteHandler
	publisherHandler *handler.PublisherHandler
	workflowHandler  *handler.WorkflowHandler
	jwtSecret        string
}

func NewServer(
	orderService service.OrderService,
	paymentService service.PaymentService,
	refundService service.RefundService,
	catalogService service.CatalogService,
	invitationService service.InvitationService,
	workflowService service.WorkflowService,
	jwtSecret string,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:             e,
		orderHandler:     handler.NewOrderHandler(orderService),
		paymentHandler:   handler.NewPaymentHandler(paymentService),
		refundHandler:    handler.NewRefundHandler(refundService),
		websiteHandler:   handler.NewWebsiteHandler(catalogService),
		publisherHandler: handler.NewPublisherHandler(invitationService),
		workflowHandler:  handler.NewWorkflowHandler(workflowService),
		jwtSecret:        jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// public: vetted inventory + invitation acceptance
	api.GET("/websites", s.websiteHandler.ListVettedWebsites)
	api.GET("/websites/:websiteId/offerings", s.websiteHandler.ListOfferings)
	api.POST("/invitations/:token/accept", s.publisherHandler.AcceptInvitation)

	// -------- advertiser (authenticated) --------
	authed := api.Group("", custommw.AuthMiddleware(s.jwtSecret))
	authed.POST("/orders", s.orderHandler.CreateOrder)
	authed.GET("/orders", s.orderHandler.ListOrders)
	authed.GET("/orders/:orderId", s.orderHandler.GetOrder)
	authed.POST("/submissions", s.orderHandler.AssignSubmission)
	authed.PATCH("/submissions/:submissionId/status", s.orderHandler.UpdateSubmissionStatus)
	authed.POST("/orders/:orderId/payment-intent", s.paymentHandler.CreatePaymentIntent)
	authed.POST("/orders/:orderId/confirm-payment", s.paymentHandler.ConfirmPayment)
	authed.POST("/vetted-site-requests", s.websiteHandler.OpenVettedSiteRequest)

	// -------- publisher onboarding --------
	authed.POST("/publishers/websites", s.websiteHandler.RegisterWebsite)

	// -------- operations (admin) --------
	admin := api.Group("/admin", custommw.AuthMiddleware(s.jwtSecret), custommw.RequireAdmin())
	admin.GET("/orders/:orderId/refund-suggestion", s.refundHandler.GetSuggestedRefund)
	admin.GET("/refund-policy", s.refundHandler.GetRefundPolicy)
	admin.POST("/refunds/bulk-calculate", s.refundHandler.CalculateBulkRefund)
	admin.POST("/orders/:orderId/refund", s.paymentHandler.ExecuteRefund)
	admin.POST("/invitations", s.publisherHandler.InvitePublisher)
	admin.POST("/websites/:websiteId/vet", s.websiteHandler.VetWebsite)
	admin.POST("/websites/:websiteId/offerings", s.websiteHandler.CreateOffering)
	admin.GET("/vetted-site-requests", s.websiteHandler.ListOpenRequests)
	admin.POST("/vetted-site-requests/:requestId/fulfill", s.websiteHandler.FulfillRequest)
	admin.PUT("/workflows", s.workflowHandler.UpsertWorkflow)
	admin.PATCH("/submissions/:submissionId/published-url", s.orderHandler.RecordPublishedURL)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
