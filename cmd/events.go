package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/kalshictl/kalshi"
)

var (
	eventStatus string
	eventSeries string
	eventLimit  int
	eventNested bool
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List events",
	Long:  `List Kalshi events, each grouping one or more related markets.`,
	RunE:  runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVar(&eventStatus, "status", "", "filter by event status")
	eventsCmd.Flags().StringVar(&eventSeries, "series", "", "filter by series ticker")
	eventsCmd.Flags().IntVar(&eventLimit, "limit", 100, "maximum events per page")
	eventsCmd.Flags().BoolVar(&eventNested, "markets", false, "include each event's markets")
}

func runEvents(cmd *cobra.Command, args []string) error {
	opts := kalshi.EventListOptions{
		Limit:        eventLimit,
		Status:       eventStatus,
		SeriesTicker: eventSeries,
	}
	if eventNested {
		opts.WithNestedMarkets = &eventNested
	}

	page, err := client.ListEvents(context.Background(), opts)
	if err != nil {
		return err
	}

	if page.IsEmpty() {
		fmt.Println("No events found.")
		return nil
	}

	fmt.Printf("\nFound %d events:\n", page.Len())
	fmt.Println(strings.Repeat("-", 80))

	for _, event := range page.Items() {
		fmt.Printf("• %s — %s [%s]\n", event.EventTicker, event.Title, event.Category)
		for _, market := range event.Markets {
			fmt.Printf("    %s  Yes: %d¢/%d¢\n", market.Ticker, market.YesBid, market.YesAsk)
		}
	}

	if page.HasMore() {
		fmt.Println("\n(more results available)")
	}

	return nil
}

// eventCmd represents the event command
var eventCmd = &cobra.Command{
	Use:   "event <ticker>",
	Short: "Show a single event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvent,
}

func init() {
	rootCmd.AddCommand(eventCmd)
}

func runEvent(cmd *cobra.Command, args []string) error {
	event, err := client.GetEvent(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s — %s\n", event.EventTicker, event.Title)
	fmt.Printf("Category: %s\n", event.Category)
	fmt.Printf("Status:   %s\n", event.Status)
	if len(event.Markets) > 0 {
		fmt.Printf("\nMarkets (%d):\n", len(event.Markets))
		for _, market := range event.Markets {
			fmt.Printf("  • %s — %s\n", market.Ticker, market.Title)
		}
	}

	return nil
}
