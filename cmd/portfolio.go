package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/kalshictl/kalshi"
)

var (
	orderStatus     string
	orderTicker     string
	positionSettled string
	positionTicker  string
	portfolioLimit  int
)

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show available account balance",
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	balance, err := client.GetBalance(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Available balance: %s (%d¢)\n", centsToDollars(balance), balance)
	return nil
}

// ordersCmd represents the orders command
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your orders",
	RunE:  runOrders,
}

func init() {
	rootCmd.AddCommand(ordersCmd)

	ordersCmd.Flags().StringVar(&orderStatus, "status", "", "filter by order status (resting, canceled, executed)")
	ordersCmd.Flags().StringVar(&orderTicker, "ticker", "", "filter by market ticker")
	ordersCmd.Flags().IntVar(&portfolioLimit, "limit", 100, "maximum orders per page")
}

func runOrders(cmd *cobra.Command, args []string) error {
	page, err := client.ListOrders(context.Background(), kalshi.OrderListOptions{
		Status: orderStatus,
		Ticker: orderTicker,
		Limit:  portfolioLimit,
	})
	if err != nil {
		return err
	}

	if page.IsEmpty() {
		fmt.Println("No orders found.")
		return nil
	}

	fmt.Printf("\nFound %d orders:\n", page.Len())
	fmt.Println(strings.Repeat("-", 80))

	for _, order := range page.Items() {
		fmt.Printf("• %s  %s %s %s ×%d  [%s]\n",
			order.OrderID, order.Action, order.Side, order.Ticker, order.Count, order.Status)
		if cfg.Safety.ShowDetails {
			if order.YesPrice != nil {
				fmt.Printf("  Yes price: %d¢", *order.YesPrice)
			}
			if order.NoPrice != nil {
				fmt.Printf("  No price: %d¢", *order.NoPrice)
			}
			fmt.Printf("  Filled: %d yes / %d no  Created: %s\n",
				order.YesFilledCount, order.NoFilledCount,
				order.CreatedTime.Format("2006-01-02 15:04"))
		}
	}

	if page.HasMore() {
		fmt.Println("\n(more results available)")
	}

	return nil
}

// positionsCmd represents the positions command
var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List your event positions",
	RunE:  runPositions,
}

func init() {
	rootCmd.AddCommand(positionsCmd)

	positionsCmd.Flags().StringVar(&positionSettled, "settlement", "", "filter by settlement status (settled, unsettled)")
	positionsCmd.Flags().StringVar(&positionTicker, "ticker", "", "filter by market ticker")
	positionsCmd.Flags().IntVar(&portfolioLimit, "limit", 100, "maximum positions per page")
}

func runPositions(cmd *cobra.Command, args []string) error {
	page, err := client.ListPositions(context.Background(), kalshi.PositionListOptions{
		SettlementStatus: positionSettled,
		Ticker:           positionTicker,
		Limit:            portfolioLimit,
	})
	if err != nil {
		return err
	}

	if page.IsEmpty() {
		fmt.Println("No positions found.")
		return nil
	}

	fmt.Printf("\nFound %d positions:\n", page.Len())
	fmt.Println(strings.Repeat("-", 80))

	for _, position := range page.Items() {
		fmt.Printf("• %s (event %s)\n", position.Ticker, position.EventTicker)
		fmt.Printf("  Exposure: %s  Realized PnL: %s  Fees: %s  Resting orders: %d\n",
			centsToDollars(position.MarketExposure),
			centsToDollars(position.RealizedPnl),
			centsToDollars(position.FeesPaid),
			position.RestingOrderCount)
	}

	if page.HasMore() {
		fmt.Println("\n(more results available)")
	}

	return nil
}
