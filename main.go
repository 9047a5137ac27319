package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weeklychef/config"
	"weeklychef/database"
	bookingRepoPkg "weeklychef/database/repository/booking"
	quoteRepoPkg "weeklychef/database/repository/quote"
	"weeklychef/handlers"
	"weeklychef/middleware"
	"weeklychef/routes"
	"weeklychef/services/checkout"
	"weeklychef/services/notification"
	"weeklychef/services/payment"
	"weeklychef/services/quote"
	"weeklychef/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitEventsCache()
	utils.StartHealthMonitor(utils.GetEventsClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	quoteRepo := quoteRepoPkg.NewMongoQuoteRepo()
	if err := bookingRepoPkg.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	dispatcher := &notification.DefaultDispatcher{
		Mailer: notification.NewResendMailer(config.AppConfig.ResendAPIKey),
		Messenger: notification.NewTwilioMessenger(
			config.AppConfig.TwilioAccountSID,
			config.AppConfig.TwilioAuthToken,
			config.AppConfig.TwilioFromNumber,
			config.AppConfig.TwilioWhatsAppNumber,
			config.AppConfig.DefaultCountryCode,
		),
		FromCustomer:  config.AppConfig.EmailFrom,
		FromSystem:    config.AppConfig.EmailSystem,
		OperatorEmail: config.AppConfig.OperatorEmail,
		OperatorPhone: config.AppConfig.OperatorPhone,
		Logger:        logger,
	}

	checkoutService := &checkout.DefaultService{
		Repo: bookingRepo,
		Provider: checkout.NewStripeProvider(
			config.AppConfig.StripeKey,
			config.AppConfig.CheckoutSuccessURL,
			config.AppConfig.CheckoutCancelURL,
		),
		PriceTolerance: config.AppConfig.PriceToleranceCents,
		Logger:         logger,
	}

	reconciler := &payment.DefaultReconciler{
		Repo:          bookingRepo,
		Notifier:      dispatcher,
		Events:        &payment.RedisEventStore{Client: utils.GetEventsClient()},
		WebhookSecret: config.AppConfig.StripeWebhookSecret,
		Logger:        logger,
	}

	quoteService := &quote.DefaultService{
		Repo:     quoteRepo,
		Notifier: dispatcher,
		Logger:   logger,
	}

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)
	webhookHandler := handlers.NewWebhookHandler(reconciler, logger)
	quoteHandler := handlers.NewQuoteHandler(quoteService, logger)
	adminHandler := handlers.NewAdminHandler(bookingRepo, dispatcher, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateCheckout: checkoutHandler.CreateCheckout,
		StripeWebhook:  webhookHandler.StripeWebhook,
		RequestQuote:   quoteHandler.RequestQuote,
		NotifyBooking:  adminHandler.NotifyBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
