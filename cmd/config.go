package cmd

import "time"

// Config carries the environment-driven settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RedisAddr  string

	// SearchRadiusKm and SearchLimit bound the proximity search run on
	// every dispatch.
	SearchRadiusKm float64
	SearchLimit    int

	// RedispatchOlderThan is how long an order may sit in Created status
	// before the sweep re-offers it.
	RedispatchOlderThan time.Duration
}
