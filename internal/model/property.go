package model

import (
	"time"

	"github.com/google/uuid"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "AVAILABLE"
	PropertyStatusRented    PropertyStatus = "RENTED"
)

type Property struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LandlordID  uuid.UUID      `gorm:"type:uuid;index" json:"landlordId"`
	Name        string         `json:"name"`
	AddressLine string         `json:"addressLine"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Rent        float64        `json:"rent"`
	Status      PropertyStatus `json:"status"`
	TenantID    *uuid.UUID     `gorm:"type:uuid" json:"tenantId,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (Property) TableName() string { return "properties" }
