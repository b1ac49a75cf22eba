package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/kalshictl/kalshi"
)

var (
	tradeTicker string
	tradeMinTs  int64
	tradeMaxTs  int64
	tradeLimit  int
)

// tradesCmd represents the trades command
var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List recently executed trades",
	RunE:  runTrades,
}

func init() {
	rootCmd.AddCommand(tradesCmd)

	tradesCmd.Flags().StringVar(&tradeTicker, "ticker", "", "filter by market ticker")
	tradesCmd.Flags().Int64Var(&tradeMinTs, "min-ts", 0, "earliest trade time (unix seconds)")
	tradesCmd.Flags().Int64Var(&tradeMaxTs, "max-ts", 0, "latest trade time (unix seconds)")
	tradesCmd.Flags().IntVar(&tradeLimit, "limit", 100, "maximum trades per page")
}

func runTrades(cmd *cobra.Command, args []string) error {
	page, err := client.ListTrades(context.Background(), kalshi.TradeListOptions{
		Ticker: tradeTicker,
		MinTs:  tradeMinTs,
		MaxTs:  tradeMaxTs,
		Limit:  tradeLimit,
	})
	if err != nil {
		return err
	}

	if page.IsEmpty() {
		fmt.Println("No trades found.")
		return nil
	}

	fmt.Printf("\nFound %d trades:\n", page.Len())
	fmt.Println(strings.Repeat("-", 80))

	for _, trade := range page.Items() {
		fmt.Printf("• %s  %s  taker=%s  yes=%d¢ no=%d¢  ×%d  %s\n",
			trade.CreatedTime.Format("2006-01-02 15:04:05"),
			trade.Ticker, trade.TakerSide, trade.YesPrice, trade.NoPrice, trade.Count,
			trade.TradeID)
	}

	if page.HasMore() {
		fmt.Println("\n(more results available)")
	}

	return nil
}
