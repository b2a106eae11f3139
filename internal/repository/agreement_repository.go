package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentnest/internal/model"
)

type AgreementRepository struct {
	db *gorm.DB
}

func NewAgreementRepository(db *gorm.DB) *AgreementRepository {
	return &AgreementRepository{db: db}
}

// InTx runs fn against a repository bound to a single transaction. opts may
// be nil for the store's default isolation.
func (r *AgreementRepository) InTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *AgreementRepository) error) error {
	run := func(tx *gorm.DB) error {
		return fn(NewAgreementRepository(tx))
	}
	if opts != nil {
		return r.db.WithContext(ctx).Transaction(run, opts)
	}
	return r.db.WithContext(ctx).Transaction(run)
}

func (r *AgreementRepository) PropertyExists(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM properties WHERE id = ?
	`, propertyID).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AgreementRepository) HasForTenantAndProperty(ctx context.Context, tenantID, propertyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM agreements
		WHERE tenant_id = ? AND property_id = ?
	`, tenantID, propertyID).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AgreementRepository) ListIntervals(ctx context.Context, propertyID uuid.UUID) ([]model.AgreementInterval, error) {
	var intervals []model.AgreementInterval
	err := r.db.WithContext(ctx).Raw(`
		SELECT start_date, end_date
		FROM agreements
		WHERE property_id = ?
		ORDER BY start_date ASC
	`, propertyID).Scan(&intervals).Error
	if err != nil {
		return nil, err
	}
	return intervals, nil
}

func (r *AgreementRepository) Create(ctx context.Context, agreement *model.Agreement) error {
	return r.db.WithContext(ctx).Create(agreement).Error
}

func (r *AgreementRepository) Get(ctx context.Context, id uuid.UUID) (*model.Agreement, error) {
	var agreement model.Agreement
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, property_id, tenant_id, start_date, end_date, rent, status, created_at
		FROM agreements
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&agreement).Error
	if err != nil {
		return nil, err
	}
	if agreement.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &agreement, nil
}

func (r *AgreementRepository) FindOwnedByTenant(ctx context.Context, id, tenantID uuid.UUID) (*model.Agreement, error) {
	var agreement model.Agreement
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, property_id, tenant_id, start_date, end_date, rent, status, created_at
		FROM agreements
		WHERE id = ? AND tenant_id = ?
		LIMIT 1
	`, id, tenantID).Scan(&agreement).Error
	if err != nil {
		return nil, err
	}
	if agreement.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &agreement, nil
}

func (r *AgreementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM agreements WHERE id = ?`, id).Error
}

func (r *AgreementRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.TenantAgreementRow, error) {
	var rows []model.TenantAgreementRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.property_id,
			a.start_date,
			a.end_date,
			a.rent,
			a.status,
			p.name AS property_name,
			p.city,
			p.state,
			u.name AS tenant_name,
			u.email AS tenant_email,
			u.phone AS tenant_phone
		FROM agreements a
		JOIN properties p ON p.id = a.property_id
		JOIN users u ON u.id = a.tenant_id
		WHERE a.tenant_id = ?
		ORDER BY a.created_at DESC
	`, tenantID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AgreementRepository) ListPendingByProperties(ctx context.Context, propertyIDs []uuid.UUID) ([]model.PendingAgreementRow, error) {
	if len(propertyIDs) == 0 {
		return nil, nil
	}
	var rows []model.PendingAgreementRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.start_date,
			a.end_date,
			a.rent,
			a.status,
			u.name AS tenant_name,
			u.phone AS tenant_phone,
			p.name AS property_name
		FROM agreements a
		JOIN users u ON u.id = a.tenant_id
		JOIN properties p ON p.id = a.property_id
		WHERE a.property_id IN ? AND a.status = ?
		ORDER BY a.start_date ASC
	`, propertyIDs, model.AgreementStatusPending).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AgreementRepository) GetDocument(ctx context.Context, id uuid.UUID) (*model.AgreementDocument, error) {
	var row struct {
		ID            uuid.UUID
		PropertyID    uuid.UUID
		TenantID      uuid.UUID
		StartDate     sql.NullTime
		EndDate       sql.NullTime
		Rent          float64
		Status        string
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

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.property_id,
			a.tenant_id,
			a.start_date,
			a.end_date,
			a.rent,
			a.status,
			p.name AS property_name,
			p.address_line,
			p.city,
			p.state,
			l.id AS landlord_id,
			l.name AS landlord_name,
			l.email AS landlord_email,
			l.phone AS landlord_phone,
			u.name AS tenant_name,
			u.email AS tenant_email,
			u.phone AS tenant_phone
		FROM agreements a
		JOIN properties p ON p.id = a.property_id
		JOIN landlords l ON l.id = p.landlord_id
		JOIN users u ON u.id = a.tenant_id
		WHERE a.id = ?
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	return &model.AgreementDocument{
		Agreement: model.Agreement{
			ID:         row.ID,
			PropertyID: row.PropertyID,
			TenantID:   row.TenantID,
			StartDate:  row.StartDate.Time,
			EndDate:    row.EndDate.Time,
			Rent:       row.Rent,
			Status:     model.AgreementStatus(row.Status),
		},
		PropertyName:  row.PropertyName,
		AddressLine:   row.AddressLine,
		City:          row.City,
		State:         row.State,
		LandlordID:    row.LandlordID,
		LandlordName:  row.LandlordName,
		LandlordEmail: row.LandlordEmail,
		LandlordPhone: row.LandlordPhone,
		TenantName:    row.TenantName,
		TenantEmail:   row.TenantEmail,
		TenantPhone:   row.TenantPhone,
	}, nil
}

// Approve flips the agreement to APPROVED and marks the property RENTED with
// the agreement's tenant assigned, in one transaction. Either both writes
// apply or neither does.
func (r *AgreementRepository) Approve(ctx context.Context, agreement *model.Agreement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(`
			UPDATE agreements SET status = ? WHERE id = ?
		`, model.AgreementStatusApproved, agreement.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		result = tx.Exec(`
			UPDATE properties SET status = ?, tenant_id = ? WHERE id = ?
		`, model.PropertyStatusRented, agreement.TenantID, agreement.PropertyID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
