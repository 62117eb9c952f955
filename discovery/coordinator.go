package discovery

import (
	"context"
	"log"
	"sync"
	"time"

	"localoop/api/places"
	"localoop/config"
	"localoop/location"
	"localoop/models"
)

// ScreenConfig is a per-screen preset: how many results the screen shows
// and which category it starts on.
type ScreenConfig struct {
	Name            string
	ResultLimit     int
	DefaultCategory models.Category
	RadiusMeters    int
	QueryTimeout    time.Duration
}

// MapScreenConfig is the map screen preset.
func MapScreenConfig() ScreenConfig {
	return ScreenConfig{
		Name:            "map",
		ResultLimit:     config.MAP_RESULT_LIMIT,
		DefaultCategory: models.CategoryAll,
		RadiusMeters:    config.SEARCH_RADIUS_METERS,
		QueryTimeout:    config.PLACES_QUERY_TIMEOUT_SECONDS * time.Second,
	}
}

// DashboardScreenConfig is the dashboard screen preset.
func DashboardScreenConfig() ScreenConfig {
	return ScreenConfig{
		Name:            "dashboard",
		ResultLimit:     config.DASHBOARD_RESULT_LIMIT,
		DefaultCategory: models.CategoryRestaurant,
		RadiusMeters:    config.SEARCH_RADIUS_METERS,
		QueryTimeout:    config.PLACES_QUERY_TIMEOUT_SECONDS * time.Second,
	}
}

// Snapshot is a consistent copy of the coordinator state for rendering.
// Both the map and the list presentations draw from the same Results.
type Snapshot struct {
	Location    *models.Coordinate
	Category    models.Category
	SearchText  string
	Loading     bool
	Results     []models.Place
	QueryErr    error
	LocationErr error
}

// Coordinator holds one screen's discovery state and decides when to
// (re)issue a places query. Each screen owns its own coordinator; there is
// no shared state across screens.
//
// Responses are matched against a monotonically increasing request sequence
// so that a slow superseded response never overwrites a newer result set.
type Coordinator struct {
	cfg       ScreenConfig
	placesApi places.PlacesAPI
	locations location.Provider

	mu          sync.Mutex
	seq         uint64
	location    *models.Coordinate
	category    models.Category
	searchText  string
	loading     bool
	results     []models.Place
	queryErr    error
	locationErr error
	listener    func(Snapshot)
}

// NewCoordinator constructs a coordinator with its collaborators injected.
func NewCoordinator(cfg ScreenConfig, placesApi places.PlacesAPI, locations location.Provider) *Coordinator {
	return &Coordinator{
		cfg:       cfg,
		placesApi: placesApi,
		locations: locations,
		category:  cfg.DefaultCategory,
	}
}

// SetListener registers a callback invoked after every state change. The
// callback receives a snapshot and runs outside the coordinator lock.
func (c *Coordinator) SetListener(listener func(Snapshot)) {
	c.mu.Lock()
	c.listener = listener
	c.mu.Unlock()
}

// Mount runs the on-mount transition: acquire location, then issue the
// initial query with the screen's default category. On acquisition failure
// the screen keeps an absent location and shows the error state; the retry
// affordance calls Mount again.
func (c *Coordinator) Mount(ctx context.Context) {
	c.acquireAndQuery(ctx)
}

// Recenter re-acquires a fresh location and re-issues the query around the
// new center.
func (c *Coordinator) Recenter(ctx context.Context) {
	c.acquireAndQuery(ctx)
}

func (c *Coordinator) acquireAndQuery(ctx context.Context) {
	coordinate, err := location.Acquire(ctx, c.locations)

	c.mu.Lock()
	if err != nil {
		log.Printf("[Coordinator:%s] location acquisition failed: %v", c.cfg.Name, err)
		c.locationErr = err
		c.notifyLocked()
		return
	}
	c.location = &coordinate
	c.locationErr = nil
	c.dispatchLocked(ctx)
	c.notifyLocked()
}

// SetCategory latches the new category and, when a location is present,
// immediately re-issues the query. Allowed while a previous query is still
// in flight; the sequence check discards the superseded response.
func (c *Coordinator) SetCategory(ctx context.Context, category models.Category) {
	c.mu.Lock()
	c.category = category
	if c.location != nil {
		c.dispatchLocked(ctx)
	}
	c.notifyLocked()
}

// SetSearchText latches the free-text filter. No query is issued on
// keystrokes; the latched text narrows the visible results immediately.
func (c *Coordinator) SetSearchText(text string) {
	c.mu.Lock()
	c.searchText = text
	c.notifyLocked()
}

// SubmitSearch runs the explicit search transition: a query is issued only
// when the text is non-empty or the category differs from the screen
// default. While a submitted query is loading the triggering control is
// disabled, so a concurrent submit is a no-op.
func (c *Coordinator) SubmitSearch(ctx context.Context) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	if c.searchText == "" && c.category == c.cfg.DefaultCategory {
		c.mu.Unlock()
		return
	}
	if c.location == nil {
		c.mu.Unlock()
		return
	}
	c.dispatchLocked(ctx)
	c.notifyLocked()
}

// Clear resets the result set without re-querying.
func (c *Coordinator) Clear() {
	c.mu.Lock()
	c.results = nil
	c.queryErr = nil
	c.notifyLocked()
}

// SelectPlace maps a list-card selection to the tighter map region centered
// on that place. It never re-queries or mutates the result set.
func (c *Coordinator) SelectPlace(placeID string) (models.Region, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.results {
		if p.PlaceID == placeID {
			return models.NewRegion(p.Coordinate(),
				config.FOCUS_LATITUDE_DELTA, config.FOCUS_LONGITUDE_DELTA), true
		}
	}
	return models.Region{}, false
}

// InitialRegion is the map viewport around the current location at the
// default zoom.
func (c *Coordinator) InitialRegion() (models.Region, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.location == nil {
		return models.Region{}, false
	}
	return models.NewRegion(*c.location,
		config.DEFAULT_LATITUDE_DELTA, config.DEFAULT_LONGITUDE_DELTA), true
}

// Snapshot returns a consistent copy of the current state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// VisibleResults is the result set narrowed by the latched search text.
func (c *Coordinator) VisibleResults() []models.Place {
	c.mu.Lock()
	defer c.mu.Unlock()
	return FilterPlaces(c.results, c.searchText)
}

// dispatchLocked issues an asynchronous query for the current state. The
// caller must hold the lock.
func (c *Coordinator) dispatchLocked(ctx context.Context) {
	if c.location == nil {
		return
	}
	c.seq++
	seq := c.seq
	c.loading = true
	c.queryErr = nil

	params := models.QueryParams{
		Center:       *c.location,
		RadiusMeters: c.cfg.RadiusMeters,
		Category:     c.category,
		Limit:        c.cfg.ResultLimit,
		SearchText:   c.searchText,
	}
	log.Printf("[Coordinator:%s] issuing query seq=%d category=%s", c.cfg.Name, seq, c.category)

	go c.runQuery(ctx, seq, params)
}

func (c *Coordinator) runQuery(ctx context.Context, seq uint64, params models.QueryParams) {
	queryCtx, cancel := context.WithTimeout(ctx, c.cfg.QueryTimeout)
	defer cancel()

	results, err := c.placesApi.NearbySearch(queryCtx, params)

	c.mu.Lock()
	if seq != c.seq {
		// A newer request was issued while this one was in flight.
		// Last issued wins; drop the stale response on arrival.
		log.Printf("[Coordinator:%s] discarding stale response seq=%d (latest=%d)",
			c.cfg.Name, seq, c.seq)
		c.mu.Unlock()
		return
	}
	c.loading = false
	if err != nil {
		log.Printf("[Coordinator:%s] query seq=%d failed: %v", c.cfg.Name, seq, err)
		c.results = nil
		c.queryErr = err
	} else {
		c.results = results
	}
	c.notifyLocked()
}

// snapshotLocked copies the state. The caller must hold the lock.
func (c *Coordinator) snapshotLocked() Snapshot {
	results := make([]models.Place, len(c.results))
	copy(results, c.results)
	return Snapshot{
		Location:    c.location,
		Category:    c.category,
		SearchText:  c.searchText,
		Loading:     c.loading,
		Results:     results,
		QueryErr:    c.queryErr,
		LocationErr: c.locationErr,
	}
}

// notifyLocked snapshots state, releases the lock, and invokes the
// listener. The caller must hold the lock; it is released here.
func (c *Coordinator) notifyLocked() {
	snap := c.snapshotLocked()
	listener := c.listener
	c.mu.Unlock()
	if listener != nil {
		listener(snap)
	}
}
