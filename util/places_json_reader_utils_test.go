package util

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"localoop/models"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadNearbySearchResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"status": "OK",
		"results": [
			{
				"place_id": "p1",
				"name": "Joe's Diner",
				"vicinity": "1 Main St",
				"geometry": {"location": {"lat": 1, "lng": 2}},
				"rating": 4.5,
				"types": ["restaurant"],
				"opening_hours": {"open_now": true}
			}
		]
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadNearbySearchResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response.Status != "OK" {
		t.Errorf("Expected Status 'OK', got %s", response.Status)
	}
	if len(response.Results) != 1 {
		t.Fatalf("Expected 1 place, got %d", len(response.Results))
	}
	place := response.Results[0]
	if place.PlaceID != "p1" {
		t.Errorf("Expected PlaceID 'p1', got %s", place.PlaceID)
	}
	if place.Name != "Joe's Diner" {
		t.Errorf("Expected Name \"Joe's Diner\", got %s", place.Name)
	}
	if place.Geometry.Location.Lat != 1 || place.Geometry.Location.Lng != 2 {
		t.Errorf("Unexpected geometry: %+v", place.Geometry)
	}
	if !place.OpenNow() {
		t.Errorf("Expected place to be open now")
	}
	if place.Rating == nil || *place.Rating != 4.5 {
		t.Errorf("Expected rating 4.5, got %v", place.Rating)
	}
}

func TestReadNearbySearchResponseFromJSON_MissingFile(t *testing.T) {
	// Act
	response, err := ReadNearbySearchResponseFromJSON("does_not_exist.json")

	// Assert
	if err == nil {
		t.Errorf("Expected an error, got nil")
	}
	if response != nil {
		t.Errorf("Expected response to be nil, got %v", response)
	}
}

func TestPrintNearbySearchResponsePartially(t *testing.T) {
	// Arrange
	response := &models.NearbySearchResponse{
		Status: "OK",
		Results: []models.Place{
			{
				PlaceID:  "p1",
				Name:     "Joe's Diner",
				Vicinity: "1 Main St",
				Geometry: models.Geometry{Location: models.Location{Lat: 45.5210, Lng: -73.5550}},
			},
		},
	}
	var buf bytes.Buffer

	// Act
	PrintNearbySearchResponsePartially(&buf, response)

	// Assert
	out := buf.String()
	if !strings.Contains(out, "Status: OK") {
		t.Errorf("Expected status line, got %q", out)
	}
	if !strings.Contains(out, "Places returned: 1") {
		t.Errorf("Expected count line, got %q", out)
	}
	if !strings.Contains(out, "First place: Joe's Diner at 1 Main St (45.521000, -73.555000)") {
		t.Errorf("Expected first-place line, got %q", out)
	}
}

func TestPrintNearbySearchResponsePartially_Empty(t *testing.T) {
	// Arrange
	response := &models.NearbySearchResponse{Status: "ZERO_RESULTS"}
	var buf bytes.Buffer

	// Act
	PrintNearbySearchResponsePartially(&buf, response)

	// Assert
	out := buf.String()
	if !strings.Contains(out, "Status: ZERO_RESULTS") {
		t.Errorf("Expected status line, got %q", out)
	}
	if strings.Contains(out, "First place:") {
		t.Errorf("Expected no first-place line for empty results, got %q", out)
	}
}

func TestReadPlacesFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{"place_id": "p1", "name": "Sunrise Cafe", "vicinity": "2 High St", "types": ["cafe"]},
		{"place_id": "p2", "name": "Spin Cycle", "vicinity": "3 Low Rd", "types": ["laundry"]}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	places, err := ReadPlacesFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("Expected 2 places, got %d", len(places))
	}
	if places[0].PlaceID != "p1" || places[1].PlaceID != "p2" {
		t.Errorf("Unexpected place IDs: %s, %s", places[0].PlaceID, places[1].PlaceID)
	}
}
