package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentnest/internal/config"
	"rentnest/internal/model"
	"rentnest/internal/repository"
)

type PDFGenerator interface {
	Generate(doc model.AgreementDocument) ([]byte, error)
}

type ExcelGenerator interface {
	Generate(rows []model.PendingAgreementRow) ([]byte, error)
}

type AgreementService struct {
	agreements      *repository.AgreementRepository
	properties      *repository.PropertyRepository
	pdf             PDFGenerator
	excel           ExcelGenerator
	exclusivityRule string
	txOptions       *sql.TxOptions
}

type CreateAgreementInput struct {
	PropertyID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Rent       float64
	Principal  model.Principal
}

type FileResult struct {
	FileName string
	Content  []byte
}

func NewAgreementService(
	agreements *repository.AgreementRepository,
	properties *repository.PropertyRepository,
	pdf PDFGenerator,
	excel ExcelGenerator,
	cfg *config.Config,
) *AgreementService {
	var txOptions *sql.TxOptions
	if cfg.Agreements.IsolationLevel == "serializable" {
		txOptions = &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return &AgreementService{
		agreements:      agreements,
		properties:      properties,
		pdf:             pdf,
		excel:           excel,
		exclusivityRule: cfg.Agreements.ExclusivityRule,
		txOptions:       txOptions,
	}
}

// Create runs the duplicate-relationship and interval-overlap checks and
// inserts a PENDING agreement. Checks and insert share one transaction so
// concurrent requests for the same property cannot both pass the overlap
// check and double-book it.
func (s *AgreementService) Create(ctx context.Context, input CreateAgreementInput) (*model.Agreement, error) {
	if !input.Principal.IsTenant() {
		return nil, ErrPermissionDenied
	}
	if input.PropertyID == uuid.Nil {
		return nil, fmt.Errorf("%w: property_id is required", ErrInvalidInput)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", ErrInvalidInput)
	}

	start := dateOnly(input.StartDate)
	end := dateOnly(input.EndDate)
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start_date must be before end_date", ErrInvalidInput)
	}
	if input.Rent <= 0 {
		return nil, fmt.Errorf("%w: rent must be positive", ErrInvalidInput)
	}

	var created *model.Agreement
	err := s.agreements.InTx(ctx, s.txOptions, func(tx *repository.AgreementRepository) error {
		exists, err := tx.PropertyExists(ctx, input.PropertyID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if s.exclusivityRule == config.ExclusivityOneActivePerPair {
			has, err := tx.HasForTenantAndProperty(ctx, input.Principal.ID, input.PropertyID)
			if err != nil {
				return err
			}
			if has {
				return ErrAgreementExists
			}
		}

		intervals, err := tx.ListIntervals(ctx, input.PropertyID)
		if err != nil {
			return err
		}
		for _, interval := range intervals {
			if overlaps(start, end, dateOnly(interval.StartDate), dateOnly(interval.EndDate)) {
				return ErrPeriodUnavailable
			}
		}

		agreement := &model.Agreement{
			ID:         uuid.New(),
			PropertyID: input.PropertyID,
			TenantID:   input.Principal.ID,
			StartDate:  start,
			EndDate:    end,
			Rent:       input.Rent,
			Status:     model.AgreementStatusPending,
			CreatedAt:  time.Now().UTC(),
		}
		if err := tx.Create(ctx, agreement); err != nil {
			return err
		}
		created = agreement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AgreementService) ListForTenant(ctx context.Context, principal model.Principal) ([]model.TenantAgreementRow, error) {
	if !principal.IsTenant() {
		return nil, ErrPermissionDenied
	}
	rows, err := s.agreements.ListByTenant(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.TenantAgreementRow{}
	}
	return rows, nil
}

// ListPendingForLandlord resolves the landlord's property ids first, then
// filters agreements by that set and PENDING status. An empty result is
// ErrNoPending, which the transport layer reports as 204 rather than an
// error payload.
func (s *AgreementService) ListPendingForLandlord(ctx context.Context, principal model.Principal) ([]model.PendingAgreementRow, error) {
	if !principal.IsLandlord() {
		return nil, ErrPermissionDenied
	}
	propertyIDs, err := s.properties.ListOwnedIDs(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	rows, err := s.agreements.ListPendingByProperties(ctx, propertyIDs)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoPending
	}
	return rows, nil
}

// Delete removes an agreement owned by the acting tenant. Deletion is not
// restricted to PENDING records: a tenant may also drop an APPROVED one.
func (s *AgreementService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsTenant() {
		return ErrPermissionDenied
	}
	if id == uuid.Nil {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	agreement, err := s.agreements.FindOwnedByTenant(ctx, id, principal.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.agreements.Delete(ctx, agreement.ID)
}

// Intervals is the public read used to grey out unavailable date ranges.
// Zero agreements is reported as ErrNotFound, matching the API contract.
func (s *AgreementService) Intervals(ctx context.Context, propertyID uuid.UUID) ([]model.AgreementInterval, error) {
	if propertyID == uuid.Nil {
		return nil, fmt.Errorf("%w: property id is required", ErrInvalidInput)
	}
	intervals, err := s.agreements.ListIntervals(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return nil, ErrNotFound
	}
	return intervals, nil
}

// Approve requires the acting landlord to own the agreement's property,
// then applies the APPROVED/RENTED transition atomically.
func (s *AgreementService) Approve(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsLandlord() {
		return ErrPermissionDenied
	}
	if id == uuid.Nil {
		return fmt.Errorf("%w: application id is required", ErrInvalidInput)
	}

	agreement, err := s.agreements.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	property, err := s.properties.Get(ctx, agreement.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if property.LandlordID != principal.ID {
		return ErrPermissionDenied
	}

	return s.agreements.Approve(ctx, agreement)
}

// Document renders the printable contract. Only the agreement's tenant or
// the owning landlord may download it.
func (s *AgreementService) Document(ctx context.Context, principal model.Principal, id uuid.UUID) (*FileResult, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	doc, err := s.agreements.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	allowed := (principal.IsTenant() && principal.ID == doc.Agreement.TenantID) ||
		(principal.IsLandlord() && principal.ID == doc.LandlordID)
	if !allowed {
		return nil, ErrPermissionDenied
	}

	content, err := s.pdf.Generate(*doc)
	if err != nil {
		return nil, err
	}
	return &FileResult{
		FileName: fmt.Sprintf("agreement-%s.pdf", doc.Agreement.ID),
		Content:  content,
	}, nil
}

// ExportPending writes the landlord's pending applications to a workbook.
func (s *AgreementService) ExportPending(ctx context.Context, principal model.Principal) (*FileResult, error) {
	rows, err := s.ListPendingForLandlord(ctx, principal)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(rows)
	if err != nil {
		return nil, err
	}
	return &FileResult{
		FileName: fmt.Sprintf("pending-agreements-%s.xlsx", time.Now().UTC().Format("20060102")),
		Content:  content,
	}, nil
}

// overlaps reports whether either boundary of [newStart, newEnd] falls
// inside [exStart, exEnd], boundaries inclusive.
func overlaps(newStart, newEnd, exStart, exEnd time.Time) bool {
	return within(newStart, exStart, exEnd) || within(newEnd, exStart, exEnd)
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
