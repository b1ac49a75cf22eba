package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/s0up4200/kalshictl/kalshi"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	// Check cache if enabled
	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached.(CompiledFilter), nil
		}
	}

	// Compile with static environment for validation
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Allow market properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Position:   -1,
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
	}

	// Cache if enabled
	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a market
func (f *exprFilter) Evaluate(market kalshi.Market) bool {
	env := createRuntimeEnvironment(market)

	result, err := expr.Run(f.program, env)
	if err != nil {
		// Skip markets that cause evaluation errors
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// IsThreadSafe indicates that expr filters are thread-safe
func (f *exprFilter) IsThreadSafe() bool {
	return true
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(market kalshi.Market) map[string]any {
	env := make(map[string]any, 48)

	// Add helper functions
	addHelperFunctions(env)

	// Add market data
	env["Market"] = market

	// Market-specific helpers using closures
	env["spread"] = createSpreadFunc(market)
	env["midpoint"] = createMidpointFunc(market)
	env["isOpen"] = createIsOpenFunc(market)
	env["closesWithin"] = createClosesWithinFunc(market)
	env["daysUntilClose"] = createDaysUntilCloseFunc(market)
	env["hasVolume"] = createHasVolumeFunc(market)
	env["inCategory"] = createInCategoryFunc(market)

	// Direct market properties for convenience
	env["Ticker"] = market.Ticker
	env["EventTicker"] = market.EventTicker
	env["Title"] = market.Title
	env["Subtitle"] = market.Subtitle
	env["Status"] = market.Status
	env["Category"] = market.Category
	env["Result"] = market.Result
	env["YesBid"] = market.YesBid
	env["YesAsk"] = market.YesAsk
	env["NoBid"] = market.NoBid
	env["NoAsk"] = market.NoAsk
	env["LastPrice"] = market.LastPrice
	env["Volume"] = market.Volume
	env["Volume24h"] = market.Volume24h
	env["Liquidity"] = market.Liquidity
	env["OpenInterest"] = market.OpenInterest
	env["OpenTime"] = market.OpenTime
	env["CloseTime"] = market.CloseTime
	env["CanCloseEarly"] = market.CanCloseEarly

	return env
}

// Helper factory functions using closures

func createSpreadFunc(market kalshi.Market) func() int {
	return func() int {
		return market.YesAsk - market.YesBid
	}
}

func createMidpointFunc(market kalshi.Market) func() float64 {
	return func() float64 {
		return float64(market.YesBid+market.YesAsk) / 2
	}
}

func createIsOpenFunc(market kalshi.Market) func() bool {
	return func() bool {
		return market.Status == "active" || market.Status == "open"
	}
}

func createClosesWithinFunc(market kalshi.Market) func(int) bool {
	return func(days int) bool {
		if market.CloseTime.IsZero() {
			return false
		}
		deadline := time.Now().AddDate(0, 0, days)
		return market.CloseTime.Before(deadline) && market.CloseTime.After(time.Now())
	}
}

func createDaysUntilCloseFunc(market kalshi.Market) func() int {
	return func() int {
		if market.CloseTime.IsZero() {
			return 0
		}
		return int(time.Until(market.CloseTime).Hours() / 24)
	}
}

func createHasVolumeFunc(market kalshi.Market) func(int) bool {
	return func(minimum int) bool {
		return market.Volume >= int64(minimum)
	}
}

func createInCategoryFunc(market kalshi.Market) func(string) bool {
	return func(category string) bool {
		return strings.EqualFold(market.Category, category)
	}
}
