package service

import (
	"testing"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupChocolateServiceTest(t *testing.T) (ChocolateService, *gorm.DB) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	chocolateRepo := repository.NewChocolateRepository(testDB)
	brandRepo := repository.NewBrandRepository(testDB)
	return NewChocolateService(chocolateRepo, brandRepo), testDB
}

func createTestBrand(t *testing.T, testDB *gorm.DB, name string, userID uint) *model.Brand {
	t.Helper()
	brand := &model.Brand{Name: name, UserID: userID}
	require.NoError(t, testDB.Create(brand).Error)
	return brand
}

func TestChocolateService_CreateChocolate(t *testing.T) {
	chocolateService, testDB := setupChocolateServiceTest(t)
	owner := createTestUser(t, testDB, "owner@test.com", model.RoleUser)
	brand := createTestBrand(t, testDB, "Valrhona", owner.ID)

	cacao := 70
	chocolate, err := chocolateService.CreateChocolate(&model.CreateChocolateRequest{
		Name:         "Guanaja",
		Description:  "Intense dark chocolate",
		CacaoPercent: &cacao,
		FlavorNotes:  []string{"bitter", "roasted"},
		BrandID:      brand.ID,
	}, owner.ID)
	require.NoError(t, err)
	assert.NotZero(t, chocolate.ID)
	assert.Equal(t, model.StatusPublished, chocolate.Status)
	assert.Equal(t, owner.ID, chocolate.UserID)
	assert.Len(t, chocolate.FlavorNotes, 2)
}

func TestChocolateService_CreateChocolate_BrandNotFound(t *testing.T) {
	chocolateService, testDB := setupChocolateServiceTest(t)
	owner := createTestUser(t, testDB, "owner@test.com", model.RoleUser)

	_, err := chocolateService.CreateChocolate(&model.CreateChocolateRequest{
		Name:        "Orphan",
		Description: "No such brand",
		BrandID:     9999,
	}, owner.ID)
	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestChocolateService_UpdateChocolate_Authorization(t *testing.T) {
	chocolateService, testDB := setupChocolateServiceTest(t)
	owner := createTestUser(t, testDB, "owner@test.com", model.RoleUser)
	stranger := createTestUser(t, testDB, "stranger@test.com", model.RoleUser)
	admin := createTestUser(t, testDB, "admin@test.com", model.RoleAdmin)
	brand := createTestBrand(t, testDB, "Valrhona", owner.ID)

	chocolate, err := chocolateService.CreateChocolate(&model.CreateChocolateRequest{
		Name:        "Guanaja",
		Description: "Intense dark chocolate",
		BrandID:     brand.ID,
	}, owner.ID)
	require.NoError(t, err)

	newName := "Guanaja 70%"

	_, err = chocolateService.UpdateChocolate(chocolate.ID, &model.UpdateChocolateRequest{Name: &newName}, stranger.ID, model.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := chocolateService.UpdateChocolate(chocolate.ID, &model.UpdateChocolateRequest{Name: &newName}, admin.ID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, owner.ID, updated.UserID)
}

func TestChocolateService_UpdateChocolate_PartialUpdate(t *testing.T) {
	chocolateService, testDB := setupChocolateServiceTest(t)
	owner := createTestUser(t, testDB, "owner@test.com", model.RoleUser)
	brand := createTestBrand(t, testDB, "Valrhona", owner.ID)

	cacao := 70
	chocolate, err := chocolateService.CreateChocolate(&model.CreateChocolateRequest{
		Name:         "Guanaja",
		Description:  "Intense dark chocolate",
		CacaoPercent: &cacao,
		BrandID:      brand.ID,
	}, owner.ID)
	require.NoError(t, err)

	hasMint := true
	updated, err := chocolateService.UpdateChocolate(chocolate.ID, &model.UpdateChocolateRequest{HasMint: &hasMint}, owner.ID, model.RoleUser)
	require.NoError(t, err)
	assert.True(t, updated.HasMint)
	assert.Equal(t, "Guanaja", updated.Name)
	require.NotNil(t, updated.CacaoPercent)
	assert.Equal(t, 70, *updated.CacaoPercent)
}

func TestChocolateService_UpdateChocolate_BrandChange(t *testing.T) {
	chocolateService, testDB := setupChocolateServiceTest(t)
	owner := createTestUser(t, testDB, "owner@test.com", model.RoleUser)
	brand := createTestBrand(t, testDB, "Valrhona", owner.ID)
	otherBrand := createTestBrand(t, testDB, "Callebaut", owner.ID)

	chocolate, err := chocolateService.CreateChocolate(&model.CreateChocolateRequest{
		Name:        "Guanaja",
		Description: "Intense dark chocolate",
		BrandID:     brand.ID,
	}, owner.ID)
	require.NoError(t, err)

	missing := uint(9999)
	_, err = chocolateService.UpdateChocolate(chocolate.ID, &model.UpdateChocolateRequest{BrandID: &missing}, owner.ID, model.RoleUser)
	assert.ErrorIs(t, err, ErrBrandNotFound)

	updated, err := chocolateService.UpdateChocolate(chocolate.ID, &model.UpdateChocolateRequest{BrandID: &otherBrand.ID}, owner.ID, model.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, otherBrand.ID, updated.BrandID)
}

func TestChocolateService_DeleteChocolate(t *testing.T) {
	chocolateService, testDB := setupChocolateServiceTest(t)
	owner := createTestUser(t, testDB, "owner@test.com", model.RoleUser)
	stranger := createTestUser(t, testDB, "stranger@test.com", model.RoleUser)
	brand := createTestBrand(t, testDB, "Valrhona", owner.ID)

	chocolate, err := chocolateService.CreateChocolate(&model.CreateChocolateRequest{
		Name:        "Guanaja",
		Description: "Intense dark chocolate",
		BrandID:     brand.ID,
	}, owner.ID)
	require.NoError(t, err)

	err = chocolateService.DeleteChocolate(chocolate.ID, stranger.ID, model.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden)

	err = chocolateService.DeleteChocolate(chocolate.ID, owner.ID, model.RoleUser)
	assert.NoError(t, err)

	_, err = chocolateService.GetChocolate(chocolate.ID)
	assert.ErrorIs(t, err, ErrChocolateNotFound)
}

func TestChocolateService_GetChocolates_Filters(t *testing.T) {
	chocolateService, testDB := setupChocolateServiceTest(t)
	owner := createTestUser(t, testDB, "owner@test.com", model.RoleUser)
	brand := createTestBrand(t, testDB, "Valrhona", owner.ID)
	otherBrand := createTestBrand(t, testDB, "Callebaut", owner.ID)

	_, err := chocolateService.CreateChocolate(&model.CreateChocolateRequest{
		Name: "Guanaja", Description: "Dark", BrandID: brand.ID,
	}, owner.ID)
	require.NoError(t, err)
	_, err = chocolateService.CreateChocolate(&model.CreateChocolateRequest{
		Name: "Ruby RB1", Description: "Ruby", BrandID: otherBrand.ID,
	}, owner.ID)
	require.NoError(t, err)

	chocolates, total, err := chocolateService.GetChocolates(&model.ChocolateListQuery{
		Page: 1, PageSize: 20, BrandID: &brand.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, chocolates, 1)
	assert.Equal(t, "Guanaja", chocolates[0].Name)

	chocolates, total, err = chocolateService.GetChocolates(&model.ChocolateListQuery{
		Page: 1, PageSize: 20, Search: "Ruby",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, chocolates, 1)
	assert.Equal(t, "Ruby RB1", chocolates[0].Name)
}
