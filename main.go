// File: gamedey/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamedey/config"
	"gamedey/cron"
	"gamedey/database"
	bookingRepoPkg "gamedey/database/repository/booking"
	conversationRepoPkg "gamedey/database/repository/conversation"
	directoryRepoPkg "gamedey/database/repository/directory"
	userRepoPkg "gamedey/database/repository/user"
	"gamedey/handlers"
	"gamedey/middleware"
	"gamedey/routes"
	"gamedey/services/booking"
	"gamedey/services/conversation"
	"gamedey/services/notification"
	"gamedey/services/payment"
	"gamedey/services/role"
	"gamedey/services/tasks"
	"gamedey/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	conversationRepo := conversationRepoPkg.NewMongoConversationRepo()
	directoryRepo := directoryRepoPkg.NewCachedDirectoryRepo(
		directoryRepoPkg.NewMongoDirectoryRepo(),
		utils.GetCacheClient(),
		logger,
	)

	for name, ensure := range map[string]func() error{
		"bookings":      bookingRepo.EnsureIndexes,
		"users":         userRepo.EnsureIndexes,
		"conversations": conversationRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	emailSender, err := notification.NewSESClient(
		config.AppConfig.AWSAccessKeyID,
		config.AppConfig.AWSSecretAccessKey,
		config.AppConfig.AWSRegion,
		config.AppConfig.EmailSender,
	)
	if err != nil {
		logger.Sugar().Warnf("main: email disabled: %v", err)
	}

	notificationService, err := notification.NewDefaultNotificationService(userRepo, emailSender)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	provisioner := conversation.NewDefaultProvisioner(bookingRepo, conversationRepo)
	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:               bookingRepo,
		Directory:          directoryRepo,
		Users:              userRepo,
		Notifier:           notificationService,
		Conversations:      provisioner,
		Reminders:          reminderScheduler,
		Effects:            &booking.AsyncEffectDispatcher{Logger: logger},
		ServiceFeeRate:     config.AppConfig.ServiceFeeRate,
		CancellationCutoff: time.Duration(config.AppConfig.CancellationCutoffHr) * time.Hour,
	}

	resolver := role.NewResolver(userRepo, directoryRepo)

	handlers.UserRepo = userRepo
	handlers.BookingService = bookingService
	handlers.AvailabilityService = booking.NewAvailabilityService(bookingRepo)
	handlers.PaymentService = payment.NewDefaultPaymentService(bookingRepo)
	handlers.ConversationProvisioner = provisioner

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Register routes.
	routes.RegisterRoutes(router, resolver)

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
