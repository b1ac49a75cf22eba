package kalshi

// Page wraps one page of results from a list endpoint together with the
// continuation cursor returned by the server.
//
// HasMore is a heuristic, not a server-provided truth: it is set when the
// caller supplied an explicit limit and the server returned exactly that
// many items. An exact-fit final page therefore reports true, and a
// server-side page cap smaller than the requested limit reports false even
// though more data exists. Callers that must drain everything should follow
// Cursor until it comes back empty.
type Page[T any] struct {
	items   []T
	cursor  string
	hasMore bool
}

// newPage builds a Page from decoded items, the server cursor, and the
// limit the caller asked for (0 when none was given).
func newPage[T any](items []T, cursor string, limit int) Page[T] {
	return Page[T]{
		items:   items,
		cursor:  cursor,
		hasMore: limit > 0 && len(items) == limit,
	}
}

// Items returns a copy of the page's items in API response order. Mutating
// the returned slice does not affect the page.
func (p Page[T]) Items() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// At returns the item at index i.
func (p Page[T]) At(i int) T {
	return p.items[i]
}

// Len returns the number of items in the page.
func (p Page[T]) Len() int {
	return len(p.items)
}

// IsEmpty reports whether the page contains no items.
func (p Page[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Cursor returns the opaque continuation token for the next page, or the
// empty string when the server sent none.
func (p Page[T]) Cursor() string {
	return p.cursor
}

// HasMore reports whether the server likely has another page. See the type
// documentation for the limits of this heuristic.
func (p Page[T]) HasMore() bool {
	return p.hasMore
}
