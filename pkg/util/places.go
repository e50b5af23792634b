package util

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// PlaceDetails holds the fields we keep from the Google Places Details API
type PlaceDetails struct {
	GooglePlaceID string
	Name          string
	Address       string
	Lat           *float64
	Lng           *float64
}

// googlePlaceResponse represents the Places Details API response
// https://developers.google.com/maps/documentation/places/web-service/details
type googlePlaceResponse struct {
	Status string `json:"status"`
	Result struct {
		PlaceID          string `json:"place_id"`
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// PlacesClient calls the Google Places Details API
type PlacesClient struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewPlacesClient creates a Places API client with the given API key
func NewPlacesClient(apiKey string) *PlacesClient {
	return &PlacesClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://maps.googleapis.com/maps/api/place/details/json",
	}
}

// GetPlaceDetails fetches name, address and coordinates for a Google place id
func (c *PlacesClient) GetPlaceDetails(placeID string) (*PlaceDetails, error) {
	if placeID == "" {
		return nil, fmt.Errorf("place id is empty")
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY not configured")
	}

	params := url.Values{}
	params.Add("place_id", placeID)
	params.Add("fields", "place_id,name,formatted_address,geometry")
	params.Add("key", c.apiKey)
	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to call Places API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result googlePlaceResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Status != "OK" {
		return nil, fmt.Errorf("places API returned status %s for place %s", result.Status, placeID)
	}

	lat := result.Result.Geometry.Location.Lat
	lng := result.Result.Geometry.Location.Lng

	return &PlaceDetails{
		GooglePlaceID: result.Result.PlaceID,
		Name:          result.Result.Name,
		Address:       result.Result.FormattedAddress,
		Lat:           &lat,
		Lng:           &lng,
	}, nil
}
