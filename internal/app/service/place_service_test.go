package service

import (
	"errors"
	"testing"
	"time"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/internal/db"
	"github.com/chocolog/chocolog-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPlaceServiceTest(t *testing.T, lookup PlaceDetailsLookup) (PlaceService, *gorm.DB) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	placeRepo := repository.NewPlaceRepository(testDB)
	return NewPlaceService(placeRepo, lookup), testDB
}

func TestPlaceService_ResolvePlace_Upsert(t *testing.T) {
	lookup := &stubPlaceLookup{
		details: &util.PlaceDetails{
			GooglePlaceID: "gp-1",
			Name:          "Old Name",
			Address:       "1 Cocoa Street",
			Lat:           floatPtr(1),
			Lng:           floatPtr(2),
		},
	}
	placeService, testDB := setupPlaceServiceTest(t, lookup)

	place, err := placeService.ResolvePlace("gp-1")
	require.NoError(t, err)
	assert.NotZero(t, place.ID)
	assert.Equal(t, "Old Name", place.Name)

	// Resolving again with fresh details refreshes the same row
	lookup.details.Name = "New Name"
	refreshed, err := placeService.ResolvePlace("gp-1")
	require.NoError(t, err)
	assert.Equal(t, place.ID, refreshed.ID)
	assert.Equal(t, "New Name", refreshed.Name)

	var count int64
	testDB.Model(&model.Place{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPlaceService_ResolvePlace_LookupFailure(t *testing.T) {
	lookup := &stubPlaceLookup{
		details: &util.PlaceDetails{GooglePlaceID: "gp-1", Name: "Cached", Lat: floatPtr(1), Lng: floatPtr(2)},
	}
	placeService, _ := setupPlaceServiceTest(t, lookup)

	cached, err := placeService.ResolvePlace("gp-1")
	require.NoError(t, err)

	// A cached row survives an API outage
	lookup.err = errors.New("places api unavailable")
	place, err := placeService.ResolvePlace("gp-1")
	require.NoError(t, err)
	assert.Equal(t, cached.ID, place.ID)
	assert.Equal(t, "Cached", place.Name)

	// An unknown place with a failed lookup is an error
	_, err = placeService.ResolvePlace("gp-unknown")
	assert.Error(t, err)
}

func TestPlaceService_GetPlace_NotFound(t *testing.T) {
	placeService, _ := setupPlaceServiceTest(t, &stubPlaceLookup{})

	place, err := placeService.GetPlace(9999)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
	assert.Nil(t, place)
}

func TestPlaceService_RefreshStalePlaces(t *testing.T) {
	lookup := &stubPlaceLookup{
		details: &util.PlaceDetails{GooglePlaceID: "gp-stale", Name: "Refreshed", Lat: floatPtr(3), Lng: floatPtr(4)},
	}
	placeService, testDB := setupPlaceServiceTest(t, lookup)

	stale := &model.Place{GooglePlaceID: "gp-stale", Name: "Stale"}
	require.NoError(t, testDB.Create(stale).Error)
	// Backdate past the refresh cutoff
	old := time.Now().AddDate(0, 0, -60)
	require.NoError(t, testDB.Model(stale).UpdateColumn("updated_at", old).Error)

	fresh := &model.Place{GooglePlaceID: "gp-fresh", Name: "Fresh"}
	require.NoError(t, testDB.Create(fresh).Error)

	require.NoError(t, placeService.RefreshStalePlaces())

	// Only the stale row was re-resolved
	assert.Equal(t, 1, lookup.calls)

	var reloaded model.Place
	require.NoError(t, testDB.First(&reloaded, stale.ID).Error)
	assert.Equal(t, "Refreshed", reloaded.Name)
}

func TestPlaceService_RefreshStalePlaces_SkipsFailedLookups(t *testing.T) {
	lookup := &stubPlaceLookup{err: errors.New("places api unavailable")}
	placeService, testDB := setupPlaceServiceTest(t, lookup)

	stale := &model.Place{GooglePlaceID: "gp-stale", Name: "Stale"}
	require.NoError(t, testDB.Create(stale).Error)
	old := time.Now().AddDate(0, 0, -60)
	require.NoError(t, testDB.Model(stale).UpdateColumn("updated_at", old).Error)

	// Lookup failures skip the row, the sweep itself still succeeds
	require.NoError(t, placeService.RefreshStalePlaces())

	var reloaded model.Place
	require.NoError(t, testDB.First(&reloaded, stale.ID).Error)
	assert.Equal(t, "Stale", reloaded.Name)
}
