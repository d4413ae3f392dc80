package main

import (
	"fmt"
	"guestpost-marketplace/internal/client"
	"guestpost-marketplace/internal/config"
	"guestpost-marketplace/internal/repository"
	"guestpost-marketplace/internal/server"
	"guestpost-marketplace/internal/service"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitDBClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(&cfg.Stripe)
	mailClient := client.NewMailClient(&cfg.SMTP)

	orderRepo := repository.NewOrderRepository(db)
	workflowRepo := repository.NewWorkflowRepository(db)
	websiteRepo := repository.NewWebsiteRepository(db)
	offeringRepo := repository.NewOfferingRepository(db)
	publisherRepo := repository.NewPublisherRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	requestRepo := repository.NewVettedSiteRequestRepository(db)

	orderService := service.NewOrderService(orderRepo, offeringRepo, websiteRepo)
	paymentService := service.NewPaymentService(stripeClient, orderRepo)
	refundService := service.NewRefundService(orderRepo, workflowRepo)
	catalogService := service.NewCatalogService(websiteRepo, offeringRepo, publisherRepo, requestRepo)
	invitationService := service.NewInvitationService(invitationRepo, publisherRepo, mailClient, cfg.BaseURL)
	workflowService := service.NewWorkflowService(workflowRepo, orderRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		orderService,
		paymentService,
		refundService,
		catalogService,
		invitationService,
		workflowService,
		cfg.JWT.Secret,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
