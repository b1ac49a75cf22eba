package kalshi

import "time"

// Event is a grouping of related markets sharing a common outcome category.
type Event struct {
	EventTicker       string    `json:"event_ticker"`
	SeriesTicker      string    `json:"series_ticker,omitempty"`
	SubTitle          string    `json:"sub_title,omitempty"`
	Title             string    `json:"title"`
	MutuallyExclusive bool      `json:"mutually_exclusive"`
	Category          string    `json:"category"`
	Status            string    `json:"status"`
	OpenTime          time.Time `json:"open_time"`
	CloseTime         time.Time `json:"close_time"`
	Markets           []Market  `json:"markets,omitempty"`
}

// Market is a single tradable binary-outcome contract. Prices are integer
// cents (0-100).
type Market struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	MarketType  string `json:"market_type"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	YesSubTitle string `json:"yes_sub_title,omitempty"`
	NoSubTitle  string `json:"no_sub_title,omitempty"`

	OpenTime               time.Time  `json:"open_time"`
	CloseTime              time.Time  `json:"close_time"`
	ExpectedExpirationTime *time.Time `json:"expected_expiration_time,omitempty"`
	ExpirationTime         *time.Time `json:"expiration_time,omitempty"`
	SettlementTime         *time.Time `json:"settlement_time,omitempty"`

	Status          string   `json:"status"`
	CanCloseEarly   bool     `json:"can_close_early"`
	ExpirationValue string   `json:"expiration_value,omitempty"`
	Category        string   `json:"category"`
	RiskLimitCents  int64    `json:"risk_limit_cents"`
	StrikeType      string   `json:"strike_type"`
	FloorStrike     *float64 `json:"floor_strike,omitempty"`
	CapStrike       *float64 `json:"cap_strike,omitempty"`
	Result          string   `json:"result,omitempty"`

	LastPrice        int   `json:"last_price"`
	PreviousYesPrice int   `json:"previous_yes_price,omitempty"`
	PreviousPrice    int   `json:"previous_price,omitempty"`
	YesBid           int   `json:"yes_bid"`
	YesAsk           int   `json:"yes_ask"`
	NoBid            int   `json:"no_bid"`
	NoAsk            int   `json:"no_ask"`
	Volume           int64 `json:"volume"`
	Volume24h        int64 `json:"volume_24h"`
	Liquidity        int64 `json:"liquidity"`
	OpenInterest     int64 `json:"open_interest"`
}

// OrderBookLevel is resting liquidity at one price level.
type OrderBookLevel struct {
	Price    int `json:"price"`
	Quantity int `json:"quantity"`
}

// OrderBook holds resting buy-side liquidity per side, best price first.
type OrderBook struct {
	Yes []OrderBookLevel `json:"yes"`
	No  []OrderBookLevel `json:"no"`
}

// Trade is a single executed match between counter-orders.
type Trade struct {
	TradeID     string    `json:"trade_id"`
	Ticker      string    `json:"ticker"`
	TakerSide   string    `json:"taker_side"`
	YesPrice    int       `json:"yes_price"`
	NoPrice     int       `json:"no_price"`
	Count       int       `json:"count"`
	CreatedTime time.Time `json:"created_time"`
}

// Order is a resting or filled instruction to buy/sell contracts.
type Order struct {
	OrderID                 string     `json:"order_id"`
	UserID                  string     `json:"user_id,omitempty"`
	ClientOrderID           string     `json:"client_order_id,omitempty"`
	Ticker                  string     `json:"ticker"`
	Status                  string     `json:"status"`
	Action                  string     `json:"action"`
	Side                    string     `json:"side"`
	Type                    string     `json:"type"`
	YesPrice                *int       `json:"yes_price,omitempty"`
	NoPrice                 *int       `json:"no_price,omitempty"`
	Count                   int        `json:"count"`
	YesFilledCount          int        `json:"yes_filled_count"`
	NoFilledCount           int        `json:"no_filled_count"`
	CreatedTime             time.Time  `json:"created_time"`
	ExpirationTime          *time.Time `json:"expiration_time,omitempty"`
	UpdatedTime             *time.Time `json:"updated_time,omitempty"`
	TimeInForce             string     `json:"time_in_force,omitempty"`
	OrderGroupID            string     `json:"order_group_id,omitempty"`
	SelfTradePreventionType string     `json:"self_trade_prevention_type,omitempty"`
	CloseCancelCount        *int       `json:"close_cancel_count,omitempty"`
}

// Position is a holder's net exposure on a market, in cents.
type Position struct {
	Ticker            string `json:"ticker"`
	EventTicker       string `json:"event_ticker"`
	MarketExposure    int64  `json:"market_exposure"`
	RealizedPnl       int64  `json:"realized_pnl"`
	TotalTraded       int64  `json:"total_traded"`
	RestingOrderCount int    `json:"resting_order_count"`
	FeesPaid          int64  `json:"fees_paid"`
}

// Response envelopes, one per endpoint.

// EventsResponse from GET /events
type EventsResponse struct {
	Events []Event `json:"events"`
	Cursor string  `json:"cursor,omitempty"`
}

// EventResponse from GET /events/{ticker}
type EventResponse struct {
	Event Event `json:"event"`
}

// MarketsResponse from GET /markets
type MarketsResponse struct {
	Markets []Market `json:"markets"`
	Cursor  string   `json:"cursor,omitempty"`
}

// MarketResponse from GET /markets/{ticker}
type MarketResponse struct {
	Market Market `json:"market"`
}

// OrderBookResponse from GET /markets/{ticker}/orderbook
type OrderBookResponse struct {
	OrderBook OrderBook `json:"orderbook"`
}

// TradesResponse from GET /markets/trades
type TradesResponse struct {
	Trades []Trade `json:"trades"`
	Cursor string  `json:"cursor,omitempty"`
}

// BalanceResponse from GET /portfolio/balance
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// OrdersResponse from GET /portfolio/orders
type OrdersResponse struct {
	Orders []Order `json:"orders"`
	Cursor string  `json:"cursor,omitempty"`
}

// OrderResponse from POST /portfolio/orders
type OrderResponse struct {
	Order Order `json:"order"`
}

// PositionsResponse from GET /portfolio/positions
type PositionsResponse struct {
	EventPositions []Position `json:"event_positions"`
	Cursor         string     `json:"cursor,omitempty"`
}

// EventListOptions configures a ListEvents request. Zero values are omitted
// from the query string.
type EventListOptions struct {
	Limit             int
	Cursor            string
	Status            string
	SeriesTicker      string
	WithNestedMarkets *bool
}

// MarketListOptions configures a ListMarkets request.
type MarketListOptions struct {
	Limit        int
	Cursor       string
	EventTicker  string
	SeriesTicker string
	MaxCloseTs   int64
	MinCloseTs   int64
	Status       string
	Tickers      []string
}

// TradeListOptions configures a ListTrades request.
type TradeListOptions struct {
	Ticker string
	MinTs  int64
	MaxTs  int64
	Limit  int
	Cursor string
}

// OrderListOptions configures a ListOrders request.
type OrderListOptions struct {
	Ticker      string
	EventTicker string
	MinTs       int64
	MaxTs       int64
	Status      string
	Limit       int
	Cursor      string
}

// PositionListOptions configures a ListPositions request.
type PositionListOptions struct {
	Limit            int
	Cursor           string
	SettlementStatus string
	Ticker           string
	EventTicker      string
}
