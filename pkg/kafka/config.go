// Package kafka wraps segmentio/kafka-go with the conventions used across
// Predial platform services.
package kafka

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string
}
