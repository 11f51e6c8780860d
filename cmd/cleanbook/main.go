package main

import (
	"cleanbook/internal/auth"
	bookinghandler "cleanbook/internal/bookings/handler"
	bookingrepository "cleanbook/internal/bookings/repository"
	bookingservice "cleanbook/internal/bookings/service"
	bookingvalidator "cleanbook/internal/bookings/validator"
	cleanerhandler "cleanbook/internal/cleaners/handler"
	cleanerrepository "cleanbook/internal/cleaners/repository"
	cleanerservice "cleanbook/internal/cleaners/service"
	cleanervalidator "cleanbook/internal/cleaners/validator"
	"cleanbook/internal/notify"
	"cleanbook/pkg/app"
	"cleanbook/pkg/config"
	"cleanbook/pkg/contracts"
	"cleanbook/pkg/events"

	"github.com/joho/godotenv"
)

const ServiceName = "cleanbook"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting cleanbook service")

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaBookingEventsTopic, ServiceName, cfg.Log)
	handlers := initServices(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(publisher, handlers...)
	serverApp.Run()
}

func initServices(cfg *config.Config, publisher *events.Publisher) []contracts.Handler {
	guard := auth.NewGuard(cfg.AdminCode)

	notifier := notify.NewNotifier(
		notify.NewSendGridEmailSender(cfg.SendGridAPIKey, cfg.SendGridFromEmail),
		notify.NewTwilioSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber),
		cfg.PublicBaseURL,
		cfg.AdminEmail,
		cfg.Log,
	)

	cleanerRepo := cleanerrepository.NewMongoCleanerRepository(cfg)
	cleanerService := cleanerservice.NewCleanerService(
		cleanerRepo,
		cleanervalidator.NewCleanerValidator(cfg.Log),
		notifier,
		cfg.Log,
	)

	bookingRepo := bookingrepository.NewMongoBookingRepository(cfg)
	bookingService := bookingservice.NewBookingService(
		bookingRepo,
		cleanerRepo,
		bookingvalidator.NewBookingValidator(cfg.Log),
		guard,
		notifier,
		publisher,
		cfg.Log,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		bookinghandler.NewBookingHandler(bookingService, guard, cfg.Log),
		cleanerhandler.NewCleanerHandler(cleanerService, guard, cfg.Log),
	}
}
