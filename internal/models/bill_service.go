package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillService is the configuration for one payable service offered by a
// provider: which (service_type, provider_name) pair it answers to and
// which customer_data fields a submission must carry.
type BillService struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	ServiceType    string    `gorm:"uniqueIndex:idx_bill_services_type_provider;not null" json:"service_type"`
	ProviderName   string    `gorm:"uniqueIndex:idx_bill_services_type_provider;not null" json:"provider_name"`
	Name           string    `json:"name"`
	RequiredFields string    `json:"required_fields"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *BillService) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	return
}

// RequiredFieldList splits the comma-separated RequiredFields column.
func (s *BillService) RequiredFieldList() []string {
	if s.RequiredFields == "" {
		return nil
	}

	parts := strings.Split(s.RequiredFields, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.TrimSpace(p); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
