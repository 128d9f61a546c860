package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Payments
	Providers
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Kafka struct {
	Brokers               string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	NotifierConsumerGroup string        `env:"KAFKA_NOTIFIER_GROUP_ID" envDefault:"notifier-service"`
	SubscriberTopics      string        `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"wallet.transaction.recorded,notifications.created"`
	PublishTopics         string        `env:"KAFKA_PUBLISH_TOPICS" envDefault:"wallet.transaction.recorded,notifications.created,wallet.dlq"`
	RetryMaxAttempts      int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay        time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay         time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter           bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Payments struct {
	BaseCurrency          string        `env:"BASE_CURRENCY" envDefault:"NGN"`
	TransferFeeRate       string        `env:"TRANSFER_FEE_RATE" envDefault:"0.01"`
	TransferMaxAmount     string        `env:"TRANSFER_MAX_AMOUNT" envDefault:"1000000"`
	RecipientSearchLimit  int           `env:"RECIPIENT_SEARCH_LIMIT" envDefault:"5"`
	RecipientSearchWindow time.Duration `env:"RECIPIENT_SEARCH_WINDOW" envDefault:"10m"`
}

type Providers struct {
	FlutterwavePublicKey string `env:"FLW_PUBLIC_KEY"`
	FlutterwaveSecretKey string `env:"FLW_SECRET_KEY"`
	FlutterwaveBaseURL   string `env:"FLW_BASE_URL" envDefault:"https://api.flutterwave.com/v3"`
	ReloadlyClientID     string `env:"RELOADLY_CLIENT_ID"`
	ReloadlyClientSecret string `env:"RELOADLY_CLIENT_SECRET"`
	ReloadlyBaseURL      string `env:"RELOADLY_BASE_URL" envDefault:"https://topups.reloadly.com"`
	ReloadlyAuthURL      string `env:"RELOADLY_AUTH_URL" envDefault:"https://auth.reloadly.com/oauth/token"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
