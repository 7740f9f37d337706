package catalog

import (
	"context"
	"log/slog"
)

// AllGenres aggregates the paginated genre listing into one ordered list.
// Pages are fetched sequentially (the page count is unknown up front) and
// aggregation stops at the first failed page, at the first page without a
// next link, or at the page cap, whichever comes first. Failures are
// absorbed: the caller gets whatever accumulated, possibly nothing.
func (c *Client) AllGenres(ctx context.Context) []Genre {
	var genres []Genre
	for pageNum := 1; pageNum <= maxGenrePages; pageNum++ {
		p, err := c.genrePage(ctx, pageNum)
		if err != nil {
			c.logger.Warn("genre page fetch failed, stopping aggregation",
				slog.Int("page", pageNum),
				slog.String("error", err.Error()),
			)
			break
		}
		genres = append(genres, p.Results...)
		if p.Next == "" {
			break
		}
	}
	return genres
}

// GenreNames returns the aggregated genre names in listing order.
func (c *Client) GenreNames(ctx context.Context) []string {
	genres := c.AllGenres(ctx)
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return names
}
