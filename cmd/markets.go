package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/kalshictl/filter"
	"github.com/s0up4200/kalshictl/kalshi"
)

var (
	marketStatus string
	marketEvent  string
	marketSeries string
	marketLimit  int
	marketAll    bool
	bookDepth    int
)

// marketsCmd represents the markets command
var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List markets matching the filter criteria",
	Long: `List Kalshi markets, optionally narrowed down with API-side filters
(status, event, series) and a client-side filter expression.

Filter expressions operate on market properties and helpers, e.g.:

  kalshictl markets -f 'Status == "active" && Volume > 1000'
  kalshictl markets -f 'spread() <= 3 && closesWithin(14)'`,
	RunE: runMarkets,
}

func init() {
	rootCmd.AddCommand(marketsCmd)

	marketsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	marketsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	marketsCmd.Flags().StringVar(&marketStatus, "status", "", "filter by market status (open, closed, settled)")
	marketsCmd.Flags().StringVar(&marketEvent, "event", "", "filter by event ticker")
	marketsCmd.Flags().StringVar(&marketSeries, "series", "", "filter by series ticker")
	marketsCmd.Flags().IntVar(&marketLimit, "limit", 100, "maximum markets per page")
	marketsCmd.Flags().BoolVar(&marketAll, "all", false, "fetch every page of results")
}

func runMarkets(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	opts := kalshi.MarketListOptions{
		Limit:        marketLimit,
		Status:       marketStatus,
		EventTicker:  marketEvent,
		SeriesTicker: marketSeries,
	}

	var markets []kalshi.Market
	if marketAll {
		markets, err = client.CollectMarkets(ctx, opts)
		if err != nil {
			return err
		}
	} else {
		page, err := client.ListMarkets(ctx, opts)
		if err != nil {
			return err
		}
		markets = page.Items()
		if page.HasMore() {
			defer fmt.Println("\n(more results available, use --all to fetch everything)")
		}
	}

	// Apply client-side filter expression
	if expr != "" {
		logger.Debug().Str("filter", expr).Msg("Applying filter expression")
		markets, err = filter.Apply(expr, markets)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	if len(markets) == 0 {
		fmt.Println("No markets found matching the criteria.")
		return nil
	}

	fmt.Printf("\nFound %d markets:\n", len(markets))
	fmt.Println(strings.Repeat("-", 80))

	for _, market := range markets {
		fmt.Printf("• %s — %s\n", market.Ticker, market.Title)
		if cfg.Safety.ShowDetails {
			fmt.Printf("  Status: %s  Yes: %d¢/%d¢  No: %d¢/%d¢  Last: %d¢\n",
				market.Status, market.YesBid, market.YesAsk, market.NoBid, market.NoAsk, market.LastPrice)
			fmt.Printf("  Volume: %d  Open Interest: %d  Closes: %s\n",
				market.Volume, market.OpenInterest, market.CloseTime.Format("2006-01-02 15:04"))
		}
	}

	return nil
}

// marketCmd represents the market command
var marketCmd = &cobra.Command{
	Use:   "market <ticker>",
	Short: "Show a single market",
	Args:  cobra.ExactArgs(1),
	RunE:  runMarket,
}

func init() {
	rootCmd.AddCommand(marketCmd)
}

func runMarket(cmd *cobra.Command, args []string) error {
	market, err := client.GetMarket(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s — %s\n", market.Ticker, market.Title)
	if market.Subtitle != "" {
		fmt.Printf("  %s\n", market.Subtitle)
	}
	fmt.Printf("Status:        %s\n", market.Status)
	fmt.Printf("Category:      %s\n", market.Category)
	fmt.Printf("Yes bid/ask:   %d¢ / %d¢\n", market.YesBid, market.YesAsk)
	fmt.Printf("No bid/ask:    %d¢ / %d¢\n", market.NoBid, market.NoAsk)
	fmt.Printf("Last price:    %d¢\n", market.LastPrice)
	fmt.Printf("Volume:        %d (24h: %d)\n", market.Volume, market.Volume24h)
	fmt.Printf("Open interest: %d\n", market.OpenInterest)
	fmt.Printf("Closes:        %s\n", market.CloseTime.Format("2006-01-02 15:04 MST"))
	if market.Result != "" {
		fmt.Printf("Result:        %s\n", market.Result)
	}

	return nil
}

// bookCmd represents the book command
var bookCmd = &cobra.Command{
	Use:   "book <ticker>...",
	Short: "Show order books for one or more markets",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBook,
}

func init() {
	rootCmd.AddCommand(bookCmd)

	bookCmd.Flags().IntVar(&bookDepth, "depth", 10, "price levels per side (0 for server default)")
}

func runBook(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	books, err := client.GetOrderBooks(ctx, args, bookDepth)
	if err != nil {
		return err
	}

	for _, ticker := range args {
		book := books[ticker]
		fmt.Printf("\n%s\n", ticker)
		fmt.Println(strings.Repeat("-", 40))
		printSide("YES", book.Yes)
		printSide("NO", book.No)
	}

	return nil
}

func printSide(label string, levels []kalshi.OrderBookLevel) {
	fmt.Printf("%s:\n", label)
	if len(levels) == 0 {
		fmt.Println("  (no resting orders)")
		return
	}
	for _, level := range levels {
		fmt.Printf("  %3d¢ × %d\n", level.Price, level.Quantity)
	}
}
