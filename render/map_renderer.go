package render

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"localoop/models"
)

const radiusRingSegments = 36

// PlotDiscoveryMap renders the map presentation as an HTML chart: one
// marker per place, a ring approximating the search radius around the
// center, and the viewport taken from region.
func PlotDiscoveryMap(w io.Writer, region models.Region, radiusMeters float64, placesList []models.Place) error {
	center := region.Center

	markers := []opts.GeoData{
		{Name: "You", Value: []float64{center.Longitude, center.Latitude}},
	}
	for _, p := range placesList {
		markers = append(markers, opts.GeoData{
			Name:  p.Name,
			Value: []float64{p.Geometry.Location.Lng, p.Geometry.Location.Lat},
		})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "LocaLoop Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	geo.AddSeries("Places", types.ChartScatter, markers,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Radius", types.ChartScatter, radiusRing(center, radiusMeters))

	return geo.Render(w)
}

// PlotDiscoveryMapToFile writes the map snapshot to path.
func PlotDiscoveryMapToFile(path string, region models.Region, radiusMeters float64, placesList []models.Place) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create map file %q: %w", path, err)
	}
	defer f.Close()

	if err := PlotDiscoveryMap(f, region, radiusMeters, placesList); err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}
	return nil
}

// radiusRing approximates the search-radius circle with a closed polygon.
func radiusRing(center models.Coordinate, radiusMeters float64) []opts.GeoData {
	latDelta := radiusMeters / 111320.0
	lonDelta := radiusMeters / (111320.0 * math.Cos(center.Latitude*math.Pi/180))

	var ring []opts.GeoData
	for i := 0; i <= radiusRingSegments; i++ {
		angle := 2 * math.Pi * float64(i) / radiusRingSegments
		ring = append(ring, opts.GeoData{
			Value: []float64{
				center.Longitude + lonDelta*math.Cos(angle),
				center.Latitude + latDelta*math.Sin(angle),
			},
		})
	}
	return ring
}
