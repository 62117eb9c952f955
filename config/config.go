package config

import (
	"os"
	"path/filepath"
)

// Places API config
const PLACES_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api"
const PLACES_API_KEY_ENV = "LOCALOOP_PLACES_API_KEY"
const PLACES_QUERY_TIMEOUT_SECONDS = 10

// Discovery config
const SEARCH_RADIUS_METERS = 5000
const MAP_RESULT_LIMIT = 20
const DASHBOARD_RESULT_LIMIT = 15

// Map region deltas (degrees). FOCUS_* is the tighter zoom used when a
// list card is selected.
const DEFAULT_LATITUDE_DELTA = 0.04
const DEFAULT_LONGITUDE_DELTA = 0.05
const FOCUS_LATITUDE_DELTA = 0.01
const FOCUS_LONGITUDE_DELTA = 0.01

// Location provider config
const GEOIP_ENDPOINT_BASE = "http://ip-api.com"

// Provider emulator config
const STUB_SERVER_ADDRESS = ":8080"
const STUB_ENDPOINT_BASE = "http://localhost:8080/maps/api"
const STUB_PING_ENDPOINT = "http://localhost:8080/ping"
const STUB_API_KEY = "localoop-dev-key"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const NEARBY_SEARCH_RESPONSE_RESOURCE = "nearby_search_response.json"
const PLACE_CATALOG_RESOURCE = "place_catalog.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// PlacesAPIKey reads the places credential from the environment.
func PlacesAPIKey() string {
	return os.Getenv(PLACES_API_KEY_ENV)
}
