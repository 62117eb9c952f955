package render

import (
	"fmt"
	"io"

	"localoop/models"
)

// ListRenderer writes the scrollable-card presentation of a result set.
type ListRenderer struct {
	Out io.Writer
}

func NewListRenderer(out io.Writer) *ListRenderer {
	return &ListRenderer{Out: out}
}

// Render prints one card per place. Loading shows an inline progress line;
// a query error shows an inline error panel instead of cards.
func (r *ListRenderer) Render(placesList []models.Place, loading bool, queryErr error) {
	if loading {
		fmt.Fprintln(r.Out, "Loading places...")
		return
	}
	if queryErr != nil {
		fmt.Fprintf(r.Out, "Something went wrong: %v\n", queryErr)
		return
	}
	if len(placesList) == 0 {
		fmt.Fprintln(r.Out, "No places to show.")
		return
	}

	for _, p := range placesList {
		fmt.Fprintf(r.Out, "%s\n  %s\n", p.Name, p.Vicinity)
		if p.Rating != nil {
			fmt.Fprintf(r.Out, "  Rating: %.1f\n", *p.Rating)
		}
		if p.OpenNow() {
			fmt.Fprintln(r.Out, "  Open Now")
		}
	}
}
