package filter

import (
	"context"
	"runtime"
	"sync"

	"github.com/s0up4200/kalshictl/kalshi"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.workerCount = workers
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.batchSize = size
	}
}

// ConcurrentEvaluator implements both Evaluator and BatchEvaluator interfaces
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
	pool        WorkerPool
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.pool = NewWorkerPool(e.workerCount)

	return e
}

// Evaluate evaluates a single filter against all markets
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, markets []kalshi.Market) ([]kalshi.Market, error) {
	if len(markets) == 0 {
		return []kalshi.Market{}, nil
	}

	// For small market lists, don't bother with concurrency
	if len(markets) < e.batchSize {
		return e.evaluateSequential(filter, markets), nil
	}

	return e.evaluateConcurrent(ctx, filter, markets)
}

// EvaluateBatch evaluates multiple filters against markets concurrently
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, markets []kalshi.Market) (map[string][]kalshi.Market, error) {
	if len(filters) == 0 || len(markets) == 0 {
		return make(map[string][]kalshi.Market), nil
	}

	results := make(map[string][]kalshi.Market)
	resultChan := make(chan BatchResult, len(filters))

	var wg sync.WaitGroup
	for name, filter := range filters {
		name, filter := name, filter
		wg.Add(1)

		err := e.pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				resultChan <- BatchResult{
					FilterName: name,
					Error:      ctx.Err(),
				}
				return
			default:
			}

			matches, err := e.Evaluate(ctx, filter, markets)
			resultChan <- BatchResult{
				FilterName: name,
				Matches:    matches,
				Error:      err,
			}
		})

		if err != nil {
			wg.Done()
			// Pool is stopped, return early
			return nil, err
		}
	}

	// Close result channel when all work is done
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results
	for result := range resultChan {
		if result.Error != nil {
			// Skip filters that error
			continue
		}
		results[result.FilterName] = result.Matches
	}

	return results, nil
}

// evaluateSequential evaluates a filter against all markets sequentially
func (e *ConcurrentEvaluator) evaluateSequential(filter CompiledFilter, markets []kalshi.Market) []kalshi.Market {
	matches := make([]kalshi.Market, 0, len(markets)/10)
	for _, market := range markets {
		if filter.Evaluate(market) {
			matches = append(matches, market)
		}
	}
	return matches
}

// evaluateConcurrent evaluates a filter against markets using the worker pool
func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, markets []kalshi.Market) ([]kalshi.Market, error) {
	chunkSize := max(len(markets)/e.workerCount, e.batchSize)

	type chunkResult struct {
		matches []kalshi.Market
		order   int
	}

	resultChan := make(chan chunkResult, (len(markets)/chunkSize)+1)
	var wg sync.WaitGroup

	// Process chunks concurrently
	chunkIndex := 0
	for i := 0; i < len(markets); i += chunkSize {
		end := min(i+chunkSize, len(markets))

		wg.Add(1)
		chunk := markets[i:end]
		index := chunkIndex
		chunkIndex++

		err := e.pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			matches := make([]kalshi.Market, 0, len(chunk)/10)
			for _, market := range chunk {
				if filter.Evaluate(market) {
					matches = append(matches, market)
				}
			}

			resultChan <- chunkResult{matches: matches, order: index}
		})

		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make(map[int][]kalshi.Market)
	for result := range resultChan {
		results[result.order] = result.matches
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Combine results in order
	totalMatches := 0
	for i := 0; i < len(results); i++ {
		totalMatches += len(results[i])
	}

	allMatches := make([]kalshi.Market, 0, totalMatches)
	for i := 0; i < len(results); i++ {
		allMatches = append(allMatches, results[i]...)
	}

	return allMatches, nil
}

// Stop gracefully stops the evaluator's worker pool
func (e *ConcurrentEvaluator) Stop(ctx context.Context) error {
	return e.pool.Stop(ctx)
}
