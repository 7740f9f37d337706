package catalog

import (
	"context"
	"fmt"
)

// BestMovie returns the full detail record of the highest-rated movie:
// the first result of the score-sorted listing, then its detail fetch.
func (c *Client) BestMovie(ctx context.Context) (*MovieDetail, error) {
	p, err := c.titlePage(ctx, 1, TopRated())
	if err != nil {
		return nil, fmt.Errorf("best movie listing: %w", err)
	}
	if len(p.Results) == 0 {
		return nil, fmt.Errorf("best movie listing: empty result")
	}
	detail, err := c.Title(ctx, p.Results[0].ID)
	if err != nil {
		return nil, fmt.Errorf("best movie detail: %w", err)
	}
	return detail, nil
}
