package kalshi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListEvents retrieves a page of events matching the given options.
func (c *Client) ListEvents(ctx context.Context, opts EventListOptions) (Page[Event], error) {
	params := url.Values{}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		params.Set("cursor", opts.Cursor)
	}
	if opts.Status != "" {
		params.Set("status", opts.Status)
	}
	if opts.SeriesTicker != "" {
		params.Set("series_ticker", opts.SeriesTicker)
	}
	if opts.WithNestedMarkets != nil {
		params.Set("with_nested_markets", strconv.FormatBool(*opts.WithNestedMarkets))
	}

	data, _, err := c.doRequest(ctx, http.MethodGet, "/events", params, nil)
	if err != nil {
		return Page[Event]{}, err
	}

	var resp EventsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Page[Event]{}, fmt.Errorf("failed to parse events response: %w", err)
	}

	c.logger.Debug().
		Int("count", len(resp.Events)).
		Msg("Retrieved events")

	return newPage(resp.Events, resp.Cursor, opts.Limit), nil
}

// GetEvent retrieves a single event by its ticker.
func (c *Client) GetEvent(ctx context.Context, ticker string) (*Event, error) {
	data, _, err := c.doRequest(ctx, http.MethodGet, "/events/"+ticker, nil, nil)
	if err != nil {
		return nil, err
	}

	var resp EventResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse event response: %w", err)
	}

	return &resp.Event, nil
}

// ListMarkets retrieves a page of markets matching the given options.
func (c *Client) ListMarkets(ctx context.Context, opts MarketListOptions) (Page[Market], error) {
	params := url.Values{}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		params.Set("cursor", opts.Cursor)
	}
	if opts.EventTicker != "" {
		params.Set("event_ticker", opts.EventTicker)
	}
	if opts.SeriesTicker != "" {
		params.Set("series_ticker", opts.SeriesTicker)
	}
	if opts.MaxCloseTs > 0 {
		params.Set("max_close_ts", strconv.FormatInt(opts.MaxCloseTs, 10))
	}
	if opts.MinCloseTs > 0 {
		params.Set("min_close_ts", strconv.FormatInt(opts.MinCloseTs, 10))
	}
	if opts.Status != "" {
		params.Set("status", opts.Status)
	}
	if len(opts.Tickers) > 0 {
		params.Set("tickers", strings.Join(opts.Tickers, ","))
	}

	data, _, err := c.doRequest(ctx, http.MethodGet, "/markets", params, nil)
	if err != nil {
		return Page[Market]{}, err
	}

	var resp MarketsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Page[Market]{}, fmt.Errorf("failed to parse markets response: %w", err)
	}

	c.logger.Debug().
		Int("count", len(resp.Markets)).
		Msg("Retrieved markets")

	return newPage(resp.Markets, resp.Cursor, opts.Limit), nil
}

// GetMarket retrieves a single market by its ticker.
func (c *Client) GetMarket(ctx context.Context, ticker string) (*Market, error) {
	data, _, err := c.doRequest(ctx, http.MethodGet, "/markets/"+ticker, nil, nil)
	if err != nil {
		return nil, err
	}

	var resp MarketResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse market response: %w", err)
	}

	return &resp.Market, nil
}

// GetOrderBook retrieves the order book for a market. depth limits the
// number of price levels per side; 0 requests the server default.
func (c *Client) GetOrderBook(ctx context.Context, ticker string, depth int) (*OrderBook, error) {
	params := url.Values{}
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}

	data, _, err := c.doRequest(ctx, http.MethodGet, "/markets/"+ticker+"/orderbook", params, nil)
	if err != nil {
		return nil, err
	}

	var resp OrderBookResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse orderbook response: %w", err)
	}

	return &resp.OrderBook, nil
}

// ListTrades retrieves a page of executed trades matching the given options.
func (c *Client) ListTrades(ctx context.Context, opts TradeListOptions) (Page[Trade], error) {
	params := url.Values{}
	if opts.Ticker != "" {
		params.Set("ticker", opts.Ticker)
	}
	if opts.MinTs > 0 {
		params.Set("min_ts", strconv.FormatInt(opts.MinTs, 10))
	}
	if opts.MaxTs > 0 {
		params.Set("max_ts", strconv.FormatInt(opts.MaxTs, 10))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		params.Set("cursor", opts.Cursor)
	}

	data, _, err := c.doRequest(ctx, http.MethodGet, "/markets/trades", params, nil)
	if err != nil {
		return Page[Trade]{}, err
	}

	var resp TradesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Page[Trade]{}, fmt.Errorf("failed to parse trades response: %w", err)
	}

	c.logger.Debug().
		Int("count", len(resp.Trades)).
		Msg("Retrieved trades")

	return newPage(resp.Trades, resp.Cursor, opts.Limit), nil
}
