// Package kalshi provides a client for the Kalshi trading API.
//
// Kalshi is a regulated prediction market exchange for trading binary
// yes/no contracts on real-world events. This package implements a clean,
// idiomatic Go client covering market data (events, markets, order books,
// trades) and authenticated portfolio operations (balance, positions,
// orders, order creation and cancellation).
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the main API client with connection pooling and per-request
//     message signing
//   - Types: domain models representing Kalshi entities (events, markets,
//     orders, trades, positions)
//   - Page: a cursor-based pagination wrapper returned by all list calls
//   - Errors: structured error types mirroring the API's status-code
//     taxonomy, plus a distinct transport-failure type
//
// # Usage
//
// Create a new client with your API credentials:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := kalshi.NewClient(
//		"https://trading-api.kalshi.com/trade-api/v2",
//		"your-api-key",
//		"your-api-secret",
//		logger,
//		kalshi.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	markets, err := client.ListMarkets(ctx, kalshi.MarketListOptions{Limit: 100})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, m := range markets.Items() {
//		fmt.Println(m.Ticker, m.YesBid, m.YesAsk)
//	}
//
// # Error Handling
//
// Non-2xx responses are mapped to a closed set of error types:
//
//   - ValidationError (400)
//   - AuthError (401)
//   - NotFoundError (404)
//   - RateLimitError (429)
//   - ServerError (>= 500)
//   - APIError (any other >= 400, carries status code and raw body)
//   - TransportError (the request never received an API-level answer)
//
// Use errors.As to classify:
//
//	var authErr *kalshi.AuthError
//	if errors.As(err, &authErr) {
//		// credentials are wrong or expired
//	}
//
// Errors are surfaced synchronously to the caller; the client never retries.
package kalshi
