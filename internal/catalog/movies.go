package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc"
)

// Movies fetches up to count movies matching the query, flattening as many
// backend pages as needed. All page requests run concurrently; results are
// reassembled in page-number order regardless of completion order.
//
// Failure policy: a failed first page fails the whole call, since showing a
// listing without its head would misrepresent the backend's ordering. A
// failed later page only shortens the result. The returned slice never
// exceeds count.
func (c *Client) Movies(ctx context.Context, count int, q Query) ([]Movie, error) {
	if count <= 0 {
		return nil, nil
	}

	pagesNeeded := (count + PageSize - 1) / PageSize
	pages := make([]*page[Movie], pagesNeeded)
	errs := make([]error, pagesNeeded)

	var wg conc.WaitGroup
	for i := range pagesNeeded {
		wg.Go(func() {
			pages[i], errs[i] = c.titlePage(ctx, i+1, q)
		})
	}
	wg.Wait()

	if errs[0] != nil {
		return nil, fmt.Errorf("fetch movies (%s): %w", q.key(), errs[0])
	}

	movies := make([]Movie, 0, count)
	for i, p := range pages {
		if errs[i] != nil {
			// Degrade silently: the listing is shorter, not broken.
			c.logger.Debug("movie page fetch failed, skipping",
				slog.Int("page", i+1),
				slog.String("query", q.key()),
				slog.String("error", errs[i].Error()),
			)
			continue
		}
		movies = append(movies, p.Results...)
	}

	if len(movies) > count {
		movies = movies[:count]
	}
	return movies, nil
}
