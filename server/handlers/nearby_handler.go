package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"localoop/models"
)

const (
	LOCATION_QUERY_ARG = "location"
	RADIUS_QUERY_ARG   = "radius"
	TYPE_QUERY_ARG     = "type"
	KEY_QUERY_ARG      = "key"
)

// NearbyHandler serves the provider's nearby-search wire format from an
// in-memory place catalog. Used as a local stand-in for the hosted API.
type NearbyHandler struct {
	catalog []models.Place
	apiKey  string
}

func NewNearbyHandler(catalog []models.Place, apiKey string) *NearbyHandler {
	return &NearbyHandler{catalog: catalog, apiKey: apiKey}
}

func (h *NearbyHandler) NearbySearch(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	center, radius, tokens, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error envelope already written
	}

	if r.URL.Query().Get(KEY_QUERY_ARG) != h.apiKey {
		writeEnvelope(w, models.NearbySearchResponse{Status: "REQUEST_DENIED"})
		return
	}

	// 2) Filter the catalog by token intersection and distance
	results := h.filter(center, radius, tokens)

	// 3) Write the provider envelope
	if len(results) == 0 {
		writeEnvelope(w, models.NearbySearchResponse{Status: "ZERO_RESULTS"})
		return
	}
	writeEnvelope(w, models.NearbySearchResponse{Status: models.StatusOK, Results: results})
}

func (h *NearbyHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	center models.Coordinate, radius float64, tokens []string, ok bool,
) {
	parts := strings.Split(vals.Get(LOCATION_QUERY_ARG), ",")
	if len(parts) != 2 {
		writeEnvelope(w, models.NearbySearchResponse{Status: "INVALID_REQUEST"})
		return
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLng != nil {
		writeEnvelope(w, models.NearbySearchResponse{Status: "INVALID_REQUEST"})
		return
	}
	center = models.Coordinate{Latitude: lat, Longitude: lng}

	radius, err := strconv.ParseFloat(vals.Get(RADIUS_QUERY_ARG), 64)
	if err != nil || radius <= 0 {
		writeEnvelope(w, models.NearbySearchResponse{Status: "INVALID_REQUEST"})
		return
	}

	typeParam := vals.Get(TYPE_QUERY_ARG)
	if typeParam == "" {
		writeEnvelope(w, models.NearbySearchResponse{Status: "INVALID_REQUEST"})
		return
	}
	tokens = strings.Split(typeParam, ",")
	ok = true
	return
}

func (h *NearbyHandler) filter(center models.Coordinate, radius float64, tokens []string) []models.Place {
	wanted := map[string]bool{}
	for _, tok := range tokens {
		wanted[tok] = true
	}

	var results []models.Place
	for _, p := range h.catalog {
		if center.DistanceMeters(p.Coordinate()) > radius {
			continue
		}
		for _, t := range p.Types {
			if wanted[t] {
				results = append(results, p)
				break
			}
		}
	}
	return results
}

func writeEnvelope(w http.ResponseWriter, envelope models.NearbySearchResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping
func (h *NearbyHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
