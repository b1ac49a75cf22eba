package kalshi

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	// maxConcurrentRequests caps in-flight API calls during fan-out.
	maxConcurrentRequests = 5

	// collectPageLimit is the page size used when draining a cursor.
	collectPageLimit = 100
)

// GetOrderBooks fetches order books for multiple markets concurrently,
// keyed by ticker. The first failing fetch cancels the rest.
func (c *Client) GetOrderBooks(ctx context.Context, tickers []string, depth int) (map[string]*OrderBook, error) {
	books := make(map[string]*OrderBook, len(tickers))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRequests)

	for _, ticker := range tickers {
		ticker := ticker
		g.Go(func() error {
			book, err := c.GetOrderBook(ctx, ticker, depth)
			if err != nil {
				return err
			}

			mu.Lock()
			books[ticker] = book
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return books, nil
}

// CollectMarkets drains the markets cursor and returns every market matching
// the given options. The Limit and Cursor fields of opts are overridden.
func (c *Client) CollectMarkets(ctx context.Context, opts MarketListOptions) ([]Market, error) {
	opts.Limit = collectPageLimit
	opts.Cursor = ""

	var all []Market
	for {
		page, err := c.ListMarkets(ctx, opts)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Items()...)

		if page.Cursor() == "" {
			break
		}
		opts.Cursor = page.Cursor()
	}

	c.logger.Debug().
		Int("total", len(all)).
		Msg("Collected all markets")

	return all, nil
}

// CollectEvents drains the events cursor and returns every event matching
// the given options. The Limit and Cursor fields of opts are overridden.
func (c *Client) CollectEvents(ctx context.Context, opts EventListOptions) ([]Event, error) {
	opts.Limit = collectPageLimit
	opts.Cursor = ""

	var all []Event
	for {
		page, err := c.ListEvents(ctx, opts)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Items()...)

		if page.Cursor() == "" {
			break
		}
		opts.Cursor = page.Cursor()
	}

	return all, nil
}
