package kalshi

import "context"

// MarketAPI covers the public market-data endpoints.
type MarketAPI interface {
	ListEvents(ctx context.Context, opts EventListOptions) (Page[Event], error)
	GetEvent(ctx context.Context, ticker string) (*Event, error)
	ListMarkets(ctx context.Context, opts MarketListOptions) (Page[Market], error)
	GetMarket(ctx context.Context, ticker string) (*Market, error)
	GetOrderBook(ctx context.Context, ticker string, depth int) (*OrderBook, error)
	ListTrades(ctx context.Context, opts TradeListOptions) (Page[Trade], error)
}

// PortfolioAPI covers the authenticated account endpoints.
type PortfolioAPI interface {
	GetBalance(ctx context.Context) (int64, error)
	ListOrders(ctx context.Context, opts OrderListOptions) (Page[Order], error)
	CreateOrder(ctx context.Context, order OrderRequest) (*OrderCreated, error)
	CancelOrder(ctx context.Context, orderID string) (*OrderCancelled, error)
	ListPositions(ctx context.Context, opts PositionListOptions) (Page[Position], error)
}

// API is the full client surface.
type API interface {
	MarketAPI
	PortfolioAPI
	Close()
}

// Compile-time checks that Client satisfies the interfaces.
var (
	_ MarketAPI    = (*Client)(nil)
	_ PortfolioAPI = (*Client)(nil)
	_ API          = (*Client)(nil)
)
