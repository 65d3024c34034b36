package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "HotelManagement"
	DefaultMongoConnTimeout  = 30 * time.Second
	DefaultMongoMaxPoolSize  = 10

	DefaultPort = "5000"

	DefaultUploadsDir = "uploads"

	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel = "info"

	DefaultKafkaTopic = "hoteldesk.booking-events"

	// RecentBookingsLimit caps the dashboard's recent-bookings list.
	RecentBookingsLimit = 10
)
