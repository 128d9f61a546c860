package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/BlacAnon1/banqa-wallet-service/config"
	"github.com/BlacAnon1/banqa-wallet-service/internal/metrics"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/notifier"
	"github.com/BlacAnon1/banqa-wallet-service/internal/publisher"
	"github.com/BlacAnon1/banqa-wallet-service/internal/repository/posgrest"
	"github.com/BlacAnon1/banqa-wallet-service/internal/subscriber"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	subscriberTopics := strings.Split(cfg.Kafka.SubscriberTopics, ",")

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Notification{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.RegisterMetrics()

	publishers := publisher.NewKafkaPublisher(brokers[0], publishTopics, cfg.Kafka.GetRetryConfig())
	multiConsumer := subscriber.NewMultiTopicConsumer(brokers, subscriberTopics, cfg.Kafka.NotifierConsumerGroup, publishers, cfg.Kafka.GetRetryConfig())

	notificationRepo := posgrest.New[models.Notification](db)
	notifierService := notifier.NewNotifierService(notificationRepo)
	eventHandler := notifier.NewHandler(notifierService)

	multiConsumer.Listen(ctx, func(topic string, value []byte) error {
		log.Printf("📩 Received event → topic=%s value=%s\n", topic, string(value))
		return eventHandler.Handle(ctx, topic, value)
	})

	router := gin.Default()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	go func() {
		if err := router.Run(fmt.Sprintf(":%s", cfg.APP.PORT)); err != nil {
			log.Fatalf("metrics server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	for _, reader := range multiConsumer.Readers {
		if err := reader.Close(); err != nil {
			log.Println("Error closing consumer:", err)
		}
	}

	log.Println("Notifier service stopped")
}
