package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/kalshictl/kalshi"
)

var (
	orderAction   string
	orderSide     string
	orderType     string
	orderCount    int
	orderYesPrice int
	orderNoPrice  int
	orderMaxCost  int
	orderClientID string
	orderTIF      string
	orderPostOnly bool
)

// orderCmd represents the order command group
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place and cancel orders",
}

// orderCreateCmd represents the order create command
var orderCreateCmd = &cobra.Command{
	Use:   "create <ticker>",
	Short: "Place a new order",
	Long: `Place a new order on a market.

Examples:

  kalshictl order create FED-23DEC-T3.00 --action buy --side yes --type market --count 10
  kalshictl order create FED-23DEC-T3.00 --action buy --side yes --type limit --count 10 --yes-price 56`,
	Args: cobra.ExactArgs(1),
	RunE: runOrderCreate,
}

// orderCancelCmd represents the order cancel command
var orderCancelCmd = &cobra.Command{
	Use:   "cancel <order-id>",
	Short: "Cancel a resting order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderCancel,
}

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.AddCommand(orderCreateCmd)
	orderCmd.AddCommand(orderCancelCmd)

	orderCreateCmd.Flags().StringVar(&orderAction, "action", "", "buy or sell (required)")
	orderCreateCmd.Flags().StringVar(&orderSide, "side", "", "yes or no (required)")
	orderCreateCmd.Flags().StringVar(&orderType, "type", "limit", "order type (market or limit)")
	orderCreateCmd.Flags().IntVar(&orderCount, "count", 0, "number of contracts (required)")
	orderCreateCmd.Flags().IntVar(&orderYesPrice, "yes-price", 0, "limit price for the yes side, in cents")
	orderCreateCmd.Flags().IntVar(&orderNoPrice, "no-price", 0, "limit price for the no side, in cents")
	orderCreateCmd.Flags().IntVar(&orderMaxCost, "buy-max-cost", 0, "max cost for market buys, in cents")
	orderCreateCmd.Flags().StringVar(&orderClientID, "client-order-id", "", "client-supplied order ID")
	orderCreateCmd.Flags().StringVar(&orderTIF, "time-in-force", "", "time in force (e.g. fill_or_kill)")
	orderCreateCmd.Flags().BoolVar(&orderPostOnly, "post-only", false, "reject instead of matching immediately")

	orderCreateCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
	orderCancelCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func runOrderCreate(cmd *cobra.Command, args []string) error {
	ticker := args[0]

	if orderAction != "buy" && orderAction != "sell" {
		return fmt.Errorf("invalid action: %s (must be 'buy' or 'sell')", orderAction)
	}
	if orderSide != "yes" && orderSide != "no" {
		return fmt.Errorf("invalid side: %s (must be 'yes' or 'no')", orderSide)
	}
	if orderType != "market" && orderType != "limit" {
		return fmt.Errorf("invalid type: %s (must be 'market' or 'limit')", orderType)
	}
	if orderCount <= 0 {
		return fmt.Errorf("count must be positive")
	}

	request := kalshi.OrderRequest{
		Ticker: ticker,
		Action: orderAction,
		Side:   orderSide,
		Type:   orderType,
		Count:  orderCount,
	}
	if orderYesPrice > 0 {
		request.YesPrice = &orderYesPrice
	}
	if orderNoPrice > 0 {
		request.NoPrice = &orderNoPrice
	}
	if orderMaxCost > 0 {
		request.BuyMaxCost = &orderMaxCost
	}
	if orderClientID != "" {
		request.ClientOrderID = orderClientID
	}
	if orderTIF != "" {
		request.TimeInForce = orderTIF
	}
	if orderPostOnly {
		request.PostOnly = &orderPostOnly
	}

	fmt.Printf("Placing order: %s %s %s ×%d on %s",
		orderAction, orderSide, orderType, orderCount, ticker)
	if orderYesPrice > 0 {
		fmt.Printf(" @ %d¢", orderYesPrice)
	}
	fmt.Println()

	if cfg.Safety.DryRun {
		fmt.Println("[DRY RUN] Order not submitted.")
		return nil
	}

	if cfg.Safety.ConfirmOrder && !noConfirm {
		if !confirm("Submit this order?") {
			logger.Info().Msg("Order cancelled by user")
			return nil
		}
	}

	result, err := client.CreateOrder(context.Background(), request)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s (order ID: %s)\n", result.Message, result.OrderID)
	return nil
}

func runOrderCancel(cmd *cobra.Command, args []string) error {
	orderID := args[0]

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would cancel order %s.\n", orderID)
		return nil
	}

	if cfg.Safety.ConfirmOrder && !noConfirm {
		if !confirm(fmt.Sprintf("Cancel order %s?", orderID)) {
			logger.Info().Msg("Cancellation aborted by user")
			return nil
		}
	}

	result, err := client.CancelOrder(context.Background(), orderID)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", result.Message)
	return nil
}

// confirm asks the user a yes/no question and returns true only for "y".
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	var response string
	fmt.Scanln(&response)
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}
