package kalshi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// OrderRequest describes a new order. Ticker, Action, Side, Type, and Count
// are required; everything else is omitted from the request body when unset.
type OrderRequest struct {
	Ticker string `json:"ticker"`
	Action string `json:"action"`
	Side   string `json:"side"`
	Type   string `json:"type"`
	Count  int    `json:"count"`

	YesPrice                *int   `json:"yes_price,omitempty"`
	NoPrice                 *int   `json:"no_price,omitempty"`
	BuyMaxCost              *int   `json:"buy_max_cost,omitempty"`
	ClientOrderID           string `json:"client_order_id,omitempty"`
	ExpirationTs            *int64 `json:"expiration_ts,omitempty"`
	OrderGroupID            string `json:"order_group_id,omitempty"`
	PostOnly                *bool  `json:"post_only,omitempty"`
	SelfTradePreventionType string `json:"self_trade_prevention_type,omitempty"`
	SellPositionCapped      *bool  `json:"sell_position_capped,omitempty"`
	SellPositionFloor       *int   `json:"sell_position_floor,omitempty"`
	TimeInForce             string `json:"time_in_force,omitempty"`
}

// OrderCreated is the outcome of a successful CreateOrder call.
type OrderCreated struct {
	Success    bool
	Message    string
	StatusCode int
	OrderID    string
	Order      Order
}

// OrderCancelled is the outcome of a successful CancelOrder call.
type OrderCancelled struct {
	Success    bool
	Message    string
	StatusCode int
	OrderID    string
}

// GetBalance retrieves the available account balance in cents.
func (c *Client) GetBalance(ctx context.Context) (int64, error) {
	data, _, err := c.doRequest(ctx, http.MethodGet, "/portfolio/balance", nil, nil)
	if err != nil {
		return 0, err
	}

	var resp BalanceResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return 0, fmt.Errorf("failed to parse balance response: %w", err)
	}

	return resp.Balance, nil
}

// ListOrders retrieves a page of the account's orders matching the given
// options.
func (c *Client) ListOrders(ctx context.Context, opts OrderListOptions) (Page[Order], error) {
	params := url.Values{}
	if opts.Ticker != "" {
		params.Set("ticker", opts.Ticker)
	}
	if opts.EventTicker != "" {
		params.Set("event_ticker", opts.EventTicker)
	}
	if opts.MinTs > 0 {
		params.Set("min_ts", strconv.FormatInt(opts.MinTs, 10))
	}
	if opts.MaxTs > 0 {
		params.Set("max_ts", strconv.FormatInt(opts.MaxTs, 10))
	}
	if opts.Status != "" {
		params.Set("status", opts.Status)
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		params.Set("cursor", opts.Cursor)
	}

	data, _, err := c.doRequest(ctx, http.MethodGet, "/portfolio/orders", params, nil)
	if err != nil {
		return Page[Order]{}, err
	}

	var resp OrdersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Page[Order]{}, fmt.Errorf("failed to parse orders response: %w", err)
	}

	c.logger.Debug().
		Int("count", len(resp.Orders)).
		Msg("Retrieved orders")

	return newPage(resp.Orders, resp.Cursor, opts.Limit), nil
}

// CreateOrder submits a new order.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (*OrderCreated, error) {
	data, status, err := c.doRequest(ctx, http.MethodPost, "/portfolio/orders", nil, order)
	if err != nil {
		return nil, err
	}

	var resp OrderResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}

	c.logger.Info().
		Str("ticker", order.Ticker).
		Str("action", order.Action).
		Str("side", order.Side).
		Int("count", order.Count).
		Str("orderID", resp.Order.OrderID).
		Msg("Order created")

	return &OrderCreated{
		Success:    true,
		Message:    "Order created successfully",
		StatusCode: status,
		OrderID:    resp.Order.OrderID,
		Order:      resp.Order,
	}, nil
}

// CancelOrder cancels a resting order by ID.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*OrderCancelled, error) {
	_, status, err := c.doRequest(ctx, http.MethodDelete, "/portfolio/orders/"+orderID, nil, nil)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("orderID", orderID).
		Msg("Order cancelled")

	return &OrderCancelled{
		Success:    true,
		Message:    fmt.Sprintf("Order %s cancelled successfully", orderID),
		StatusCode: status,
		OrderID:    orderID,
	}, nil
}

// ListPositions retrieves a page of the account's event positions matching
// the given options.
func (c *Client) ListPositions(ctx context.Context, opts PositionListOptions) (Page[Position], error) {
	params := url.Values{}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		params.Set("cursor", opts.Cursor)
	}
	if opts.SettlementStatus != "" {
		params.Set("settlement_status", opts.SettlementStatus)
	}
	if opts.Ticker != "" {
		params.Set("ticker", opts.Ticker)
	}
	if opts.EventTicker != "" {
		params.Set("event_ticker", opts.EventTicker)
	}

	data, _, err := c.doRequest(ctx, http.MethodGet, "/portfolio/positions", params, nil)
	if err != nil {
		return Page[Position]{}, err
	}

	var resp PositionsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Page[Position]{}, fmt.Errorf("failed to parse positions response: %w", err)
	}

	c.logger.Debug().
		Int("count", len(resp.EventPositions)).
		Msg("Retrieved positions")

	return newPage(resp.EventPositions, resp.Cursor, opts.Limit), nil
}
