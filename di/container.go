package di

import (
	"log"
	"os"
	"time"

	"github.com/gorilla/mux"

	"localoop/api"
	"localoop/api/places"
	"localoop/auth"
	"localoop/auth/stub"
	"localoop/config"
	"localoop/discovery"
	"localoop/location"
	"localoop/models"
	"localoop/render"
	"localoop/server"
	"localoop/server/handlers"
	"localoop/util"
)

// Container holds all application dependencies.
type Container struct {
	PlacesAPI            places.PlacesAPI
	LocationProvider     location.Provider
	AuthProvider         auth.Provider
	StubAuthProvider     *stub.StubProvider
	SessionContext       *auth.Context
	MapCoordinator       *discovery.Coordinator
	DashboardCoordinator *discovery.Coordinator
	ListRenderer         *render.ListRenderer
	PlacesStubServer     *server.PlacesStubServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)

	var placesApi places.PlacesAPI
	var locationProvider location.Provider
	var stubServer *server.PlacesStubServer

	if env != "prod" {
		locationProvider = location.NewSimulatedProvider(models.Coordinate{
			Latitude:  45.5204001,
			Longitude: -73.5540803,
		})
		stubServer = buildStubServer()

		if env == "dev" && stubServer != nil {
			// The dev flow runs the real client against the local emulator;
			// main starts the emulator before mounting any screen.
			log.Printf("Using real places api against the local emulator")
			client := places.NewPlacesApiClient(api.NewHTTPClient(config.STUB_ENDPOINT_BASE))
			client.SetCredentials(config.STUB_API_KEY)
			placesApi = client
		} else {
			log.Printf("Using mock places api")
			placesApi = places.NewPlacesApiClientMock(
				config.GetResourcePath(config.NEARBY_SEARCH_RESPONSE_RESOURCE))
		}
	} else {
		log.Printf("Using prod places api and geoip location")
		httpClient := api.NewHTTPClientWithTimeout(
			config.PLACES_ENDPOINT_BASE, config.PLACES_QUERY_TIMEOUT_SECONDS*time.Second)

		client := places.NewPlacesApiClient(httpClient)
		client.SetCredentials(config.PlacesAPIKey())
		placesApi = client

		locationProvider = location.NewGeoIPProvider(api.NewHTTPClient(config.GEOIP_ENDPOINT_BASE))
	}

	// Identity provider: the in-process stub stands in for the hosted one.
	stubAuth := stub.NewStubProvider([]byte("localoop-dev-signing-key"))
	if err := stubAuth.SeedAccount("demo", "demo@localoop.dev", "localoop"); err != nil {
		log.Printf("Failed to seed demo account: %v", err)
	}

	// Each screen owns its own coordinator; no state is shared across them.
	mapCoordinator := discovery.NewCoordinator(
		discovery.MapScreenConfig(), placesApi, locationProvider)
	dashboardCoordinator := discovery.NewCoordinator(
		discovery.DashboardScreenConfig(), placesApi, locationProvider)

	return &Container{
		PlacesAPI:            placesApi,
		LocationProvider:     locationProvider,
		AuthProvider:         stubAuth,
		StubAuthProvider:     stubAuth,
		SessionContext:       auth.NewContext(),
		MapCoordinator:       mapCoordinator,
		DashboardCoordinator: dashboardCoordinator,
		ListRenderer:         render.NewListRenderer(os.Stdout),
		PlacesStubServer:     stubServer,
	}
}

// buildStubServer wires the local provider emulator from the place catalog
// fixture. Returns nil when the catalog is missing.
func buildStubServer() *server.PlacesStubServer {
	catalog, err := util.ReadPlacesFromJSON(config.GetResourcePath(config.PLACE_CATALOG_RESOURCE))
	if err != nil {
		log.Printf("Place catalog not available, skipping stub server: %v", err)
		return nil
	}

	handler := handlers.NewNearbyHandler(catalog, config.STUB_API_KEY)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(handler, muxRouter)
	return server.NewPlacesStubServer(router, muxRouter, config.STUB_SERVER_ADDRESS)
}
