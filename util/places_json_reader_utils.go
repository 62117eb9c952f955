package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"localoop/models"
)

// ReadNearbySearchResponseFromJSON loads a NearbySearchResponse from JSON on disk.
func ReadNearbySearchResponseFromJSON(filePath string) (*models.NearbySearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.NearbySearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NearbySearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadPlacesFromJSON loads a plain slice of Place records from JSON on disk.
func ReadPlacesFromJSON(filePath string) ([]models.Place, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var places []models.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("failed to unmarshal places: %w", err)
	}
	return places, nil
}

// PrintNearbySearchResponsePartially writes key fields of a
// NearbySearchResponse to w.
func PrintNearbySearchResponsePartially(w io.Writer, resp *models.NearbySearchResponse) {
	fmt.Fprintf(w, "Status: %s\n", resp.Status)
	fmt.Fprintf(w, "Places returned: %d\n", len(resp.Results))
	if len(resp.Results) > 0 {
		p := resp.Results[0]
		fmt.Fprintf(w, "First place: %s at %s (%.6f, %.6f)\n",
			p.Name, p.Vicinity, p.Geometry.Location.Lat, p.Geometry.Location.Lng)
	}
}
