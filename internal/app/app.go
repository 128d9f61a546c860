package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/BlacAnon1/banqa-wallet-service/config"
	"github.com/BlacAnon1/banqa-wallet-service/internal/billers"
	"github.com/BlacAnon1/banqa-wallet-service/internal/clients/flutterwave"
	"github.com/BlacAnon1/banqa-wallet-service/internal/clients/reloadly"
	"github.com/BlacAnon1/banqa-wallet-service/internal/database"
	"github.com/BlacAnon1/banqa-wallet-service/internal/handlers"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/publisher"
	"github.com/BlacAnon1/banqa-wallet-service/internal/repository/posgrest"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Wallet{},
		&models.Transaction{},
		&models.MoneyTransfer{},
		&models.BankAccount{},
		&models.WithdrawalPin{},
		&models.Currency{},
		&models.BillService{},
		&models.Profile{},
	); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if os.Getenv("GO_ENV") == "local" {
		if err := database.Seed(db); err != nil {
			log.Printf("Warning: failed to seed database: %v", err)
		}
	}

	feeRate, err := decimal.NewFromString(cfg.Payments.TransferFeeRate)
	if err != nil {
		log.Fatalf("invalid TRANSFER_FEE_RATE: %v", err)
	}
	maxAmount, err := decimal.NewFromString(cfg.Payments.TransferMaxAmount)
	if err != nil {
		log.Fatalf("invalid TRANSFER_MAX_AMOUNT: %v", err)
	}

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	events := publisher.NewKafkaPublisher(brokers[0], publishTopics, cfg.Kafka.GetRetryConfig())

	store := posgrest.NewWalletStore(db)

	reloadlyClient := reloadly.NewClient(
		cfg.Providers.ReloadlyBaseURL,
		cfg.Providers.ReloadlyAuthURL,
		cfg.Providers.ReloadlyClientID,
		cfg.Providers.ReloadlyClientSecret,
	)
	registry := billers.NewRegistry(billers.NewSimulatedProvider())
	registry.Register("airtime", billers.NewAirtimeProvider(reloadlyClient, "NG"))

	gateway := flutterwave.NewClient(cfg.Providers.FlutterwaveBaseURL, cfg.Providers.FlutterwaveSecretKey)

	ledger := service.NewLedgerService(store, events, cfg.Payments.BaseCurrency)
	transfers := service.NewTransferService(store, events, feeRate, maxAmount,
		cfg.Payments.RecipientSearchLimit, cfg.Payments.RecipientSearchWindow)
	bills := service.NewBillPayService(store, registry, events, cfg.Payments.BaseCurrency)
	withdrawals := service.NewWithdrawalService(store, ledger)
	topups := service.NewTopupService(gateway, ledger, cfg.Providers.FlutterwavePublicKey, cfg.Payments.BaseCurrency)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(
		handlers.NewWalletHandler(ledger),
		handlers.NewTransferHandler(transfers),
		handlers.NewBillHandler(bills),
		handlers.NewWithdrawalHandler(withdrawals),
		handlers.NewPaymentHandler(topups),
	)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
