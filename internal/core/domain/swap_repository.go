package domain

import "context"

// SwapRecord pairs a stored swap with its registry identifier.
type SwapRecord struct {
	Id   uint64
	Swap Swap
}

// SwapRepository is the abstraction for any kind of database intended to
// persist swaps. The store is append-only: records are never deleted, a
// consumed or cancelled swap is retained with its deadline forced to 0.
type SwapRepository interface {
	// AddSwap persists the swap under the next identifier and returns it.
	// Identifiers come from a single owned monotonic counter starting at 1,
	// incremented exactly once per successful creation, never reused.
	AddSwap(ctx context.Context, swap *Swap) (uint64, error)
	// GetSwap returns the swap with the given id, or ErrSwapNotFound.
	GetSwap(ctx context.Context, id uint64) (*Swap, error)
	// GetAllSwaps returns every stored swap along with its identifier, sorted
	// by id.
	GetAllSwaps(ctx context.Context) ([]SwapRecord, error)
	// UpdateSwap commits the changes made by updateFn to the stored swap in a
	// transactional way: nothing is persisted when updateFn returns an error.
	// An unknown id yields the zero-valued swap, whose deadline reads as 0, so
	// a lifecycle transition attempted on a nonexistent swap fails its expiry
	// check without a dedicated existence branch.
	UpdateSwap(
		ctx context.Context,
		id uint64,
		updateFn func(swap *Swap) (*Swap, error),
	) error
}
