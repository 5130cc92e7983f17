package inmemory

import (
	"context"
	"sort"

	"github.com/otcdex-network/otcdex-daemon/internal/core/domain"
)

type swapRepositoryImpl struct {
	store *swapInmemoryStore
}

// NewSwapRepositoryImpl returns a new inmemory SwapRepository implementation.
func NewSwapRepositoryImpl(store *swapInmemoryStore) domain.SwapRepository {
	return swapRepositoryImpl{store}
}

func (r swapRepositoryImpl) AddSwap(
	_ context.Context, swap *domain.Swap,
) (uint64, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	r.store.lastId++
	r.store.swaps[r.store.lastId] = *swap
	return r.store.lastId, nil
}

func (r swapRepositoryImpl) GetSwap(
	_ context.Context, id uint64,
) (*domain.Swap, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	swap, ok := r.store.swaps[id]
	if !ok {
		return nil, domain.ErrSwapNotFound
	}
	return &swap, nil
}

func (r swapRepositoryImpl) GetAllSwaps(
	_ context.Context,
) ([]domain.SwapRecord, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	records := make([]domain.SwapRecord, 0, len(r.store.swaps))
	for id, swap := range r.store.swaps {
		records = append(records, domain.SwapRecord{Id: id, Swap: swap})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Id < records[j].Id
	})
	return records, nil
}

func (r swapRepositoryImpl) UpdateSwap(
	_ context.Context,
	id uint64,
	updateFn func(swap *domain.Swap) (*domain.Swap, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	// unknown ids yield the zero-valued swap, whose deadline reads as 0.
	swap := r.store.swaps[id]

	updatedSwap, err := updateFn(&swap)
	if err != nil {
		return err
	}

	r.store.swaps[id] = *updatedSwap
	return nil
}
