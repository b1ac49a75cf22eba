package filter

import (
	"strings"

	"github.com/s0up4200/kalshictl/kalshi"
)

// defaultCompiler is shared so repeated CLI invocations of the same
// expression hit the compilation cache.
var defaultCompiler = NewExprCompiler(WithCache(64))

// CompileFilter parses a filter expression and returns a filter function.
// An empty expression matches every market.
func CompileFilter(expression string) (func(kalshi.Market) bool, error) {
	if strings.TrimSpace(expression) == "" {
		return func(kalshi.Market) bool { return true }, nil
	}

	compiled, err := defaultCompiler.Compile(expression)
	if err != nil {
		return nil, err
	}

	return compiled.Evaluate, nil
}

// Apply compiles an expression and returns the markets that match it.
func Apply(expression string, markets []kalshi.Market) ([]kalshi.Market, error) {
	match, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}

	matches := make([]kalshi.Market, 0, len(markets))
	for _, market := range markets {
		if match(market) {
			matches = append(matches, market)
		}
	}
	return matches, nil
}
