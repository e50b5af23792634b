package service

import (
	"errors"
	"time"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"github.com/chocolog/chocolog-backend/pkg/util"
	"gorm.io/gorm"
)

var ErrPlaceNotFound = errors.New("place not found")

// PlaceDetailsLookup resolves a Google place id to its details.
// Satisfied by *util.PlacesClient; tests substitute a stub.
type PlaceDetailsLookup interface {
	GetPlaceDetails(placeID string) (*util.PlaceDetails, error)
}

type PlaceService interface {
	GetPlace(id uint) (*model.Place, error)
	// ResolvePlace looks the place up in the Places API and upserts it
	// by google place id. Same physical place, same row, refreshed details.
	ResolvePlace(googlePlaceID string) (*model.Place, error)
	RefreshStalePlaces() error
}

type placeService struct {
	repo   repository.PlaceRepository
	lookup PlaceDetailsLookup
}

func NewPlaceService(repo repository.PlaceRepository, lookup PlaceDetailsLookup) PlaceService {
	return &placeService{
		repo:   repo,
		lookup: lookup,
	}
}

func (s *placeService) GetPlace(id uint) (*model.Place, error) {
	place, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return place, nil
}

func (s *placeService) ResolvePlace(googlePlaceID string) (*model.Place, error) {
	details, err := s.lookup.GetPlaceDetails(googlePlaceID)
	if err != nil {
		// A stale but known place is better than failing the caller's
		// review over a Places API hiccup.
		existing, findErr := s.repo.FindByGooglePlaceID(googlePlaceID)
		if findErr == nil {
			logger.Warn("Places API lookup failed, using cached place", map[string]interface{}{
				"google_place_id": googlePlaceID,
				"error":           err.Error(),
			})
			return existing, nil
		}
		logger.Error("Failed to resolve place", err, map[string]interface{}{
			"google_place_id": googlePlaceID,
		})
		return nil, err
	}

	place := &model.Place{
		GooglePlaceID: details.GooglePlaceID,
		Name:          details.Name,
		Lat:           details.Lat,
		Lng:           details.Lng,
	}
	if details.Address != "" {
		place.Address = &details.Address
	}

	return s.repo.UpsertByGooglePlaceID(place)
}

const stalePlaceMaxAgeDays = 30

// RefreshStalePlaces re-resolves places whose details have not been
// refreshed recently. Invoked from the scheduler, never from a request.
func (s *placeService) RefreshStalePlaces() error {
	cutoff := time.Now().AddDate(0, 0, -stalePlaceMaxAgeDays)

	stale, err := s.repo.ListStale(cutoff)
	if err != nil {
		return err
	}

	refreshed := 0
	for _, place := range stale {
		details, err := s.lookup.GetPlaceDetails(place.GooglePlaceID)
		if err != nil {
			logger.Warn("Skipping place refresh after lookup failure", map[string]interface{}{
				"place_id": place.ID,
				"error":    err.Error(),
			})
			continue
		}

		place.Name = details.Name
		place.Lat = details.Lat
		place.Lng = details.Lng
		if details.Address != "" {
			place.Address = &details.Address
		}
		if err := s.repo.Update(&place); err != nil {
			logger.Error("Failed to save refreshed place", err, map[string]interface{}{
				"place_id": place.ID,
			})
			continue
		}
		refreshed++
	}

	logger.Info("Stale place refresh completed", map[string]interface{}{
		"stale":     len(stale),
		"refreshed": refreshed,
	})
	return nil
}
