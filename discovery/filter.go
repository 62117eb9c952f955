package discovery

import (
	"strings"

	"localoop/models"
)

// FilterPlaces narrows a result set by case-insensitive substring match of
// searchText against place name OR address. An empty string returns the set
// unchanged. The filter is applied client-side only; it never reaches the
// provider query.
func FilterPlaces(placesList []models.Place, searchText string) []models.Place {
	query := strings.ToLower(strings.TrimSpace(searchText))
	if query == "" {
		return placesList
	}

	var filtered []models.Place
	for _, p := range placesList {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Vicinity), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
