package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rentnest/internal/model"
	"rentnest/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Landlord{}, &model.Property{}, &model.Agreement{}))
	return db
}

func seed(t *testing.T, db *gorm.DB) (model.Landlord, model.User, model.Property) {
	landlord := model.Landlord{ID: uuid.New(), Name: "linda", Email: "linda@example.com", Phone: "555-0202"}
	require.NoError(t, db.Create(&landlord).Error)
	tenant := model.User{ID: uuid.New(), Name: "tom", Email: "tom@example.com", Phone: "555-0101"}
	require.NoError(t, db.Create(&tenant).Error)
	property := model.Property{
		ID:          uuid.New(),
		LandlordID:  landlord.ID,
		Name:        "Sunny Apartment",
		AddressLine: "12 Main St",
		City:        "Austin",
		State:       "TX",
		Rent:        1200,
		Status:      model.PropertyStatusAvailable,
	}
	require.NoError(t, db.Create(&property).Error)
	return landlord, tenant, property
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func createAgreement(t *testing.T, db *gorm.DB, propertyID, tenantID uuid.UUID, start, end time.Time, status model.AgreementStatus) model.Agreement {
	agreement := model.Agreement{
		ID:         uuid.New(),
		PropertyID: propertyID,
		TenantID:   tenantID,
		StartDate:  start,
		EndDate:    end,
		Rent:       1200,
		Status:     status,
	}
	require.NoError(t, db.Create(&agreement).Error)
	return agreement
}

func TestHasForTenantAndProperty(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAgreementRepository(db)
	_, tenant, property := seed(t, db)

	has, err := repo.HasForTenantAndProperty(context.Background(), tenant.ID, property.ID)
	require.NoError(t, err)
	assert.False(t, has)

	createAgreement(t, db, property.ID, tenant.ID, day(1), day(10), model.AgreementStatusApproved)

	// any status counts, including APPROVED
	has, err = repo.HasForTenantAndProperty(context.Background(), tenant.ID, property.ID)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasForTenantAndProperty(context.Background(), uuid.New(), property.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestListIntervalsOrdered(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAgreementRepository(db)
	_, tenant, property := seed(t, db)
	other := model.User{ID: uuid.New(), Name: "tara", Email: "tara@example.com"}
	require.NoError(t, db.Create(&other).Error)

	createAgreement(t, db, property.ID, tenant.ID, day(20), day(25), model.AgreementStatusPending)
	createAgreement(t, db, property.ID, other.ID, day(1), day(10), model.AgreementStatusPending)

	intervals, err := repo.ListIntervals(context.Background(), property.ID)
	require.NoError(t, err)
	require.Len(t, intervals, 2)
	assert.True(t, intervals[0].StartDate.Before(intervals[1].StartDate))
}

func TestListPendingByProperties(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAgreementRepository(db)
	_, tenant, property := seed(t, db)

	rows, err := repo.ListPendingByProperties(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	createAgreement(t, db, property.ID, tenant.ID, day(1), day(10), model.AgreementStatusApproved)
	pending := createAgreement(t, db, property.ID, tenant.ID, day(15), day(20), model.AgreementStatusPending)

	rows, err = repo.ListPendingByProperties(context.Background(), []uuid.UUID{property.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, pending.ID, rows[0].ID)
	assert.Equal(t, "tom", rows[0].TenantName)
	assert.Equal(t, "Sunny Apartment", rows[0].PropertyName)
}

func TestGetDocumentJoinsParties(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewAgreementRepository(db)
	landlord, tenant, property := seed(t, db)
	agreement := createAgreement(t, db, property.ID, tenant.ID, day(1), day(10), model.AgreementStatusPending)

	doc, err := repo.GetDocument(context.Background(), agreement.ID)
	require.NoError(t, err)
	assert.Equal(t, agreement.ID, doc.Agreement.ID)
	assert.Equal(t, landlord.ID, doc.LandlordID)
	assert.Equal(t, landlord.Name, doc.LandlordName)
	assert.Equal(t, tenant.Name, doc.TenantName)
	assert.Equal(t, "Sunny Apartment", doc.PropertyName)
	assert.Equal(t, "Austin", doc.City)

	_, err = repo.GetDocument(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListOwnedIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewPropertyRepository(db)
	landlord, _, property := seed(t, db)

	ids, err := repo.ListOwnedIDs(context.Background(), landlord.ID)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, property.ID, ids[0])

	ids, err = repo.ListOwnedIDs(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, ids)
}
