package database

import (
	"log"
	"time"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads local-development fixtures: currencies, bill services and
// two funded demo users with pins (1234 and 4321).
func Seed(db *gorm.DB) error {
	currencies := []models.Currency{
		{Code: "NGN", Name: "Nigerian Naira", ExchangeRateToBase: decimal.NewFromInt(1), IsActive: true},
		{Code: "GHS", Name: "Ghanaian Cedi", ExchangeRateToBase: decimal.RequireFromString("12.5"), IsActive: true},
		{Code: "KES", Name: "Kenyan Shilling", ExchangeRateToBase: decimal.RequireFromString("0.085"), IsActive: true},
		{Code: "ZAR", Name: "South African Rand", ExchangeRateToBase: decimal.RequireFromString("0.012"), IsActive: false},
	}
	for _, currency := range currencies {
		if err := db.Where(models.Currency{Code: currency.Code}).FirstOrCreate(&currency).Error; err != nil {
			return err
		}
	}

	services := []models.BillService{
		{ServiceType: "electricity", ProviderName: "ikeja_electric", Name: "Ikeja Electric", RequiredFields: "meter_number", IsActive: true},
		{ServiceType: "tv", ProviderName: "dstv", Name: "DStv", RequiredFields: "smartcard_number", IsActive: true},
		{ServiceType: "airtime", ProviderName: "reloadly", Name: "Airtime Top-up", RequiredFields: "phone_number", IsActive: true},
	}
	for _, svc := range services {
		if err := db.Where(models.BillService{
			ServiceType:  svc.ServiceType,
			ProviderName: svc.ProviderName,
		}).FirstOrCreate(&svc).Error; err != nil {
			return err
		}
	}

	users := []struct {
		userID    string
		accountID string
		name      string
		email     string
		balance   string
		pin       string
	}{
		{"user_1", "BQ12345678", "Alice Okafor", "alice@example.com", "10000", "1234"},
		{"user_2", "BQ87654321", "Bob Mensah", "bob@example.com", "5000", "4321"},
	}

	for _, u := range users {
		profile := models.Profile{
			UserID:    u.userID,
			AccountID: u.accountID,
			FullName:  u.name,
			Email:     u.email,
			CreatedAt: time.Now(),
		}
		if err := db.Where(models.Profile{UserID: u.userID}).FirstOrCreate(&profile).Error; err != nil {
			return err
		}

		wallet := models.Wallet{
			UserID:   u.userID,
			Currency: "NGN",
			Balance:  decimal.RequireFromString(u.balance),
		}
		if err := db.Where(models.Wallet{UserID: u.userID, Currency: "NGN"}).FirstOrCreate(&wallet).Error; err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.pin), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		pin := models.WithdrawalPin{UserID: u.userID, PinHash: string(hash)}
		if err := db.Where(models.WithdrawalPin{UserID: u.userID}).FirstOrCreate(&pin).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Database seeded successfully")
	return nil
}
