package places

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"localoop/api"
	"localoop/models"
)

func newTestParams(limit int, category models.Category) models.QueryParams {
	return models.QueryParams{
		Center:       models.Coordinate{Latitude: 45.5204, Longitude: -73.5540},
		RadiusMeters: 5000,
		Category:     category,
		Limit:        limit,
	}
}

func TestNearbySearch(t *testing.T) {
	rating := 4.5
	wantResp := models.NearbySearchResponse{
		Status: "OK",
		Results: []models.Place{
			{
				PlaceID:      "p1",
				Name:         "Joe's Diner",
				Vicinity:     "1 Main St",
				Geometry:     models.Geometry{Location: models.Location{Lat: 1, Lng: 2}},
				Rating:       &rating,
				Types:        []string{"restaurant"},
				OpeningHours: &models.OpeningHours{OpenNow: true},
			},
		},
	}

	var receivedQuery map[string]string

	// Handler to verify request and return stubbed JSON
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// method + path
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/place/nearbysearch/json" {
			t.Errorf("expected path /place/nearbysearch/json; got %s", r.URL.Path)
		}

		receivedQuery = map[string]string{}
		for k := range r.URL.Query() {
			receivedQuery[k] = r.URL.Query().Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewPlacesApiClient(api.NewHTTPClient(srv.URL))
	client.SetCredentials("secret")

	got, err := client.NearbySearch(context.Background(), newTestParams(20, models.CategoryRestaurant))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 place; got %d", len(got))
	}
	if got[0].PlaceID != "p1" {
		t.Errorf("PlaceID = %q; want p1", got[0].PlaceID)
	}
	if !got[0].OpenNow() {
		t.Errorf("expected place to be open now")
	}

	// verify all forced query params
	checks := []struct {
		key  string
		want string
	}{
		{"location", "45.520400,-73.554000"},
		{"radius", "5000"},
		{"type", "restaurant"},
		{"key", "secret"},
	}
	for _, c := range checks {
		if got, ok := receivedQuery[c.key]; !ok || got != c.want {
			t.Errorf("query[%q] = %v; want %v", c.key, got, c.want)
		}
	}
}

func TestNearbySearch_AllCategoryTokenUnion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "restaurant,cafe,laundry" {
			t.Errorf("type = %q; want restaurant,cafe,laundry", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.NearbySearchResponse{Status: "OK"})
	}))
	defer srv.Close()

	client := NewPlacesApiClient(api.NewHTTPClient(srv.URL))
	client.SetCredentials("secret")

	if _, err := client.NearbySearch(context.Background(), newTestParams(20, models.CategoryAll)); err != nil {
		t.Fatal(err)
	}
}

func TestNearbySearch_TruncatesToLimit(t *testing.T) {
	resp := models.NearbySearchResponse{Status: "OK"}
	for i := 0; i < 30; i++ {
		resp.Results = append(resp.Results, models.Place{
			PlaceID: string(rune('a' + i)),
			Name:    "Place",
			Types:   []string{"restaurant"},
		})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewPlacesApiClient(api.NewHTTPClient(srv.URL))
	client.SetCredentials("secret")

	got, err := client.NearbySearch(context.Background(), newTestParams(15, models.CategoryRestaurant))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 15 {
		t.Fatalf("expected 15 places after truncation; got %d", len(got))
	}
	// provider ordering preserved
	if got[0].PlaceID != resp.Results[0].PlaceID || got[14].PlaceID != resp.Results[14].PlaceID {
		t.Errorf("truncation did not preserve provider ordering")
	}
}

func TestNearbySearch_ZeroResultsIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.NearbySearchResponse{Status: "ZERO_RESULTS"})
	}))
	defer srv.Close()

	client := NewPlacesApiClient(api.NewHTTPClient(srv.URL))
	client.SetCredentials("secret")

	got, err := client.NearbySearch(context.Background(), newTestParams(20, models.CategoryCafe))
	if got != nil {
		t.Errorf("expected nil results, got %v", got)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != "ZERO_RESULTS" {
		t.Errorf("Status = %q; want ZERO_RESULTS", statusErr.Status)
	}
}

func TestNearbySearch_InvalidParams(t *testing.T) {
	client := NewPlacesApiClient(api.NewHTTPClient("http://127.0.0.1:0"))

	params := newTestParams(20, models.CategoryRestaurant)
	params.RadiusMeters = 0

	if _, err := client.NearbySearch(context.Background(), params); err == nil {
		t.Fatal("expected validation error for zero radius")
	}
}
