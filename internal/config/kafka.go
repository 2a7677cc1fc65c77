package config

import (
	"github.com/segmentio/kafka-go"
)

// KafkaConfig configures entity event publishing. No brokers disables it.
type KafkaConfig struct {
	Brokers         []string `env:"BROKERS"          envSeparator:","`
	Topic           string   `env:"TOPIC"            envDefault:"shop-events"`
	GroupID         string   `env:"GROUP_ID"         envDefault:"shop-audit"`
	ConsumerEnabled bool     `env:"CONSUMER_ENABLED" envDefault:"false"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func NewKafkaWriter(c KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.LeastBytes{}, // Balancer for selecting partition
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaReader(c KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.Brokers,
		GroupID:  c.GroupID,
		Topic:    c.Topic,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})
}
