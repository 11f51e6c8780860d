package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvAdminCode  = "ADMIN_CODE"
	EnvAdminEmail = "ADMIN_EMAIL"
	EnvAdminPhone = "ADMIN_PHONE"

	EnvSendGridAPIKey    = "SENDGRID_API_KEY"
	EnvSendGridFromEmail = "SENDGRID_FROM_EMAIL"
	EnvTwilioAccountSID  = "TWILIO_ACCOUNT_SID"
	EnvTwilioAuthToken   = "TWILIO_AUTH_TOKEN"
	EnvTwilioFromNumber  = "TWILIO_FROM_NUMBER"

	EnvPublicBaseURL = "PUBLIC_BASE_URL"

	EnvKafkaBrokers            = "KAFKA_BROKERS"
	EnvKafkaBookingEventsTopic = "KAFKA_BOOKING_EVENTS_TOPIC"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
