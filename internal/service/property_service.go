package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentnest/internal/model"
	"rentnest/internal/repository"
)

type PropertyService struct {
	properties *repository.PropertyRepository
}

type CreatePropertyInput struct {
	Name        string
	AddressLine string
	City        string
	State       string
	Rent        float64
	Principal   model.Principal
}

func NewPropertyService(properties *repository.PropertyRepository) *PropertyService {
	return &PropertyService{properties: properties}
}

func (s *PropertyService) Create(ctx context.Context, input CreatePropertyInput) (*model.Property, error) {
	if !input.Principal.IsLandlord() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Rent <= 0 {
		return nil, fmt.Errorf("%w: rent must be positive", ErrInvalidInput)
	}

	property := &model.Property{
		ID:          uuid.New(),
		LandlordID:  input.Principal.ID,
		Name:        strings.TrimSpace(input.Name),
		AddressLine: strings.TrimSpace(input.AddressLine),
		City:        strings.TrimSpace(input.City),
		State:       strings.TrimSpace(input.State),
		Rent:        input.Rent,
		Status:      model.PropertyStatusAvailable,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) ListOwned(ctx context.Context, principal model.Principal) ([]model.Property, error) {
	if !principal.IsLandlord() {
		return nil, ErrPermissionDenied
	}
	properties, err := s.properties.ListByLandlord(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []model.Property{}
	}
	return properties, nil
}

func (s *PropertyService) ListAvailable(ctx context.Context) ([]model.Property, error) {
	properties, err := s.properties.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []model.Property{}
	}
	return properties, nil
}

func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	property, err := s.properties.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return property, nil
}
