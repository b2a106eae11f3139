package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentnest/internal/model"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *PropertyRepository) Get(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	var property model.Property
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, landlord_id, name, address_line, city, state, rent, status, tenant_id, created_at
		FROM properties
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&property).Error
	if err != nil {
		return nil, err
	}
	if property.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &property, nil
}

func (r *PropertyRepository) ListOwnedIDs(ctx context.Context, landlordID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT id
		FROM properties
		WHERE landlord_id = ?
		ORDER BY created_at ASC
	`, landlordID).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PropertyRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, landlord_id, name, address_line, city, state, rent, status, tenant_id, created_at
		FROM properties
		WHERE landlord_id = ?
		ORDER BY created_at DESC
	`, landlordID).Scan(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) ListAvailable(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, landlord_id, name, address_line, city, state, rent, status, tenant_id, created_at
		FROM properties
		WHERE status = ?
		ORDER BY created_at DESC
	`, model.PropertyStatusAvailable).Scan(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}
