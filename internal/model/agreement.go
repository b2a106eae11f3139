package model

import (
	"time"

	"github.com/google/uuid"
)

type AgreementStatus string

const (
	AgreementStatusPending  AgreementStatus = "PENDING"
	AgreementStatusApproved AgreementStatus = "APPROVED"
)

// Agreement links one tenant to one property for a date range. Dates are
// stored date-only in UTC; StartDate must precede EndDate.
type Agreement struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID       `gorm:"type:uuid;index" json:"propertyId"`
	TenantID   uuid.UUID       `gorm:"type:uuid;index" json:"tenantId"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	Rent       float64         `json:"rent"`
	Status     AgreementStatus `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (Agreement) TableName() string { return "agreements" }

// AgreementInterval is the public projection used to render unavailable
// date ranges for a property.
type AgreementInterval struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// TenantAgreementRow is an agreement as seen by its tenant, enriched with
// the property and the tenant's own contact details.
type TenantAgreementRow struct {
	ID           uuid.UUID       `json:"id"`
	PropertyID   uuid.UUID       `json:"propertyId"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Rent         float64         `json:"rent"`
	Status       AgreementStatus `json:"status"`
	PropertyName string          `json:"propertyName"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	TenantName   string          `json:"tenantName"`
	TenantEmail  string          `json:"tenantEmail"`
	TenantPhone  string          `json:"tenantPhone"`
}

// PendingAgreementRow is a pending application as seen by the landlord who
// owns the property.
type PendingAgreementRow struct {
	ID           uuid.UUID       `json:"id"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Rent         float64         `json:"rent"`
	Status       AgreementStatus `json:"status"`
	TenantName   string          `json:"tenantName"`
	TenantPhone  string          `json:"tenantPhone"`
	PropertyName string          `json:"propertyName"`
}

// AgreementDocument carries everything the printable contract needs.
type AgreementDocument struct {
	Agreement     Agreement
	PropertyName  string
	AddressLine   string
	City          string
	State         string
	LandlordID    uuid.UUID
	LandlordName  string
	LandlordEmail string
	LandlordPhone string
	TenantName    string
	TenantEmail   string
	TenantPhone   string
}
