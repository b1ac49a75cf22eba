package kalshi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/portfolio/balance", r.URL.Path)
		w.Write([]byte(`{"balance": 250000}`))
	})

	balance, err := client.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(250000), balance)
}

func TestListOrders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/portfolio/orders", r.URL.Path)
		assert.Equal(t, "resting", r.URL.Query().Get("status"))

		w.Write([]byte(`{
			"orders": [{"order_id": "o1", "ticker": "FED-23DEC-T3.00", "status": "resting", "action": "buy", "side": "yes", "count": 10}],
			"cursor": ""
		}`))
	})

	page, err := client.ListOrders(context.Background(), OrderListOptions{Status: "resting"})
	require.NoError(t, err)

	require.Equal(t, 1, page.Len())
	assert.Equal(t, "o1", page.At(0).OrderID)
	assert.Equal(t, "buy", page.At(0).Action)
}

func TestCreateOrder_MinimalBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/portfolio/orders", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(body, &fields))

		// Unset optional fields must not appear in the body.
		assert.Len(t, fields, 5)
		assert.Equal(t, "FED-23DEC-T3.00", fields["ticker"])
		assert.Equal(t, "buy", fields["action"])
		assert.Equal(t, "yes", fields["side"])
		assert.Equal(t, "market", fields["type"])
		assert.Equal(t, float64(10), fields["count"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"order": {"order_id": "new-order-1", "status": "resting"}}`))
	})

	result, err := client.CreateOrder(context.Background(), OrderRequest{
		Ticker: "FED-23DEC-T3.00",
		Action: "buy",
		Side:   "yes",
		Type:   "market",
		Count:  10,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Order created successfully", result.Message)
	assert.Equal(t, http.StatusCreated, result.StatusCode)
	assert.Equal(t, "new-order-1", result.OrderID)
}

func TestCreateOrder_LimitOrderFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(body, &fields))

		assert.Equal(t, float64(56), fields["yes_price"])
		assert.Equal(t, "cli-123", fields["client_order_id"])
		assert.Equal(t, true, fields["post_only"])
		assert.Equal(t, "fill_or_kill", fields["time_in_force"])
		assert.NotContains(t, fields, "no_price")
		assert.NotContains(t, fields, "buy_max_cost")

		w.Write([]byte(`{"order": {"order_id": "new-order-2"}}`))
	})

	yesPrice := 56
	postOnly := true
	result, err := client.CreateOrder(context.Background(), OrderRequest{
		Ticker:        "FED-23DEC-T3.00",
		Action:        "buy",
		Side:          "yes",
		Type:          "limit",
		Count:         10,
		YesPrice:      &yesPrice,
		ClientOrderID: "cli-123",
		PostOnly:      &postOnly,
		TimeInForce:   "fill_or_kill",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-order-2", result.OrderID)
}

func TestCreateOrder_ValidationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"count must be positive"}`))
	})

	result, err := client.CreateOrder(context.Background(), OrderRequest{
		Ticker: "FED-23DEC-T3.00",
		Action: "buy",
		Side:   "yes",
		Type:   "market",
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, `Validation error: {"error":"count must be positive"}`, validationErr.Error())
}

func TestCancelOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/portfolio/orders/o1", r.URL.Path)
		w.Write([]byte(`{"order": {"order_id": "o1", "status": "canceled"}}`))
	})

	result, err := client.CancelOrder(context.Background(), "o1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Order o1 cancelled successfully", result.Message)
	assert.Equal(t, "o1", result.OrderID)
}

func TestCancelOrder_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"order not found"}`))
	})

	result, err := client.CancelOrder(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, result)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListPositions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/portfolio/positions", r.URL.Path)
		assert.Equal(t, "unsettled", r.URL.Query().Get("settlement_status"))

		w.Write([]byte(`{
			"event_positions": [{"ticker": "FED-23DEC-T3.00", "event_ticker": "FED-23DEC", "market_exposure": 5600, "realized_pnl": -200}],
			"cursor": ""
		}`))
	})

	page, err := client.ListPositions(context.Background(), PositionListOptions{SettlementStatus: "unsettled"})
	require.NoError(t, err)

	require.Equal(t, 1, page.Len())
	assert.Equal(t, int64(5600), page.At(0).MarketExposure)
	assert.Equal(t, int64(-200), page.At(0).RealizedPnl)
}

func TestGetBalance_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetBalance(context.Background())
	require.Error(t, err)

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "Rate limit exceeded", rateErr.Error())
}
