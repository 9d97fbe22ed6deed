package ingest

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds parallel job posting downloads.
const maxConcurrentFetches = 4

// FetchAll retrieves several job postings concurrently. Results are returned
// in the same order as urls. The first failure cancels the remaining fetches.
func FetchAll(ctx context.Context, urls []string, opts *Options) ([]string, error) {
	texts := make([]string, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, u := range urls {
		g.Go(func() error {
			text, err := FetchJobText(ctx, u, opts)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}
