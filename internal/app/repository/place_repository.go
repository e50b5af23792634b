package repository

import (
	"errors"
	"time"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"gorm.io/gorm"
)

type PlaceRepository interface {
	FindByID(id uint) (*model.Place, error)
	FindByGooglePlaceID(googlePlaceID string) (*model.Place, error)
	// UpsertByGooglePlaceID creates the place or refreshes its details.
	// Places are the one entity that overwrites on duplicate by design.
	UpsertByGooglePlaceID(place *model.Place) (*model.Place, error)
	ListStale(olderThan time.Time) ([]model.Place, error)
	Update(place *model.Place) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) FindByID(id uint) (*model.Place, error) {
	var place model.Place
	if err := r.db.First(&place, id).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) FindByGooglePlaceID(googlePlaceID string) (*model.Place, error) {
	var place model.Place
	if err := r.db.Where("google_place_id = ?", googlePlaceID).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) UpsertByGooglePlaceID(place *model.Place) (*model.Place, error) {
	existing, err := r.FindByGooglePlaceID(place.GooglePlaceID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := r.db.Create(place).Error; err != nil {
			logger.Error("Failed to create place in database", err, map[string]interface{}{
				"google_place_id": place.GooglePlaceID,
			})
			return nil, err
		}
		logger.Debug("Place created in database", map[string]interface{}{
			"place_id":        place.ID,
			"google_place_id": place.GooglePlaceID,
		})
		return place, nil
	}

	existing.Name = place.Name
	existing.Address = place.Address
	existing.Lat = place.Lat
	existing.Lng = place.Lng
	if err := r.db.Save(existing).Error; err != nil {
		logger.Error("Failed to update place in database", err, map[string]interface{}{
			"place_id": existing.ID,
		})
		return nil, err
	}
	return existing, nil
}

func (r *placeRepository) ListStale(olderThan time.Time) ([]model.Place, error) {
	var places []model.Place
	if err := r.db.Where("updated_at < ?", olderThan).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) Update(place *model.Place) error {
	if err := r.db.Save(place).Error; err != nil {
		logger.Error("Failed to update place in database", err, map[string]interface{}{
			"place_id": place.ID,
		})
		return err
	}
	return nil
}
