package n2yo

import (
	"context"
	"strings"
)

// SearchSatellites finds satellites by name or international designator.
//
// N2YO has no search endpoint, so this queries "above" with the observer
// fixed at the equator and the maximum radius, then filters client-side.
// Coverage is therefore limited to satellites upstream currently reports
// within that swath; orbits that never cross it will not appear. This is a
// deliberate approximation, not a bug.
//
// An empty query returns the unfiltered location-based result set.
func (c *Client) SearchSatellites(ctx context.Context, query string, categoryID *int) ([]SatelliteAbove, error) {
	sats, err := c.GetAbove(ctx, 0, 0, &AboveOptions{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}

	if query == "" {
		return sats, nil
	}

	needle := strings.ToLower(query)
	matches := make([]SatelliteAbove, 0, len(sats))
	for _, s := range sats {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.IntlDesignator), needle) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}
