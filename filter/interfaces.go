package filter

import (
	"context"

	"github.com/s0up4200/kalshictl/kalshi"
)

// Filter defines the basic interface for market filters
type Filter interface {
	// Evaluate checks if a market matches the filter criteria
	Evaluate(market kalshi.Market) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string

	// IsThreadSafe indicates if the filter can be evaluated concurrently
	IsThreadSafe() bool
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator evaluates filters against markets
type Evaluator interface {
	// Evaluate evaluates a filter against all markets
	Evaluate(ctx context.Context, filter CompiledFilter, markets []kalshi.Market) ([]kalshi.Market, error)
}

// BatchEvaluator evaluates multiple filters concurrently
type BatchEvaluator interface {
	// EvaluateBatch evaluates multiple filters against markets concurrently
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, markets []kalshi.Market) (map[string][]kalshi.Market, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// BatchResult represents the result of evaluating a filter
type BatchResult struct {
	FilterName string
	Matches    []kalshi.Market
	Error      error
}

// WorkerPool defines the interface for concurrent work execution
type WorkerPool interface {
	// Submit submits work to the pool
	Submit(work func()) error

	// Stop gracefully stops the worker pool
	Stop(ctx context.Context) error
}
