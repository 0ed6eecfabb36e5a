package cmd

import "time"

// Config carries the environment-driven settings for the application.
type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	KafkaHost        string
	KafkaOrdersTopic string
	KafkaItemsTopic  string

	// PendingOrderWindow is how long an order may stay pending before the
	// expiration job cancels it.
	PendingOrderWindow time.Duration

	// LowStockThreshold is the availability below which an active item is
	// reported as low on stock.
	LowStockThreshold int
}
