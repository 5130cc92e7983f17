package dbbadger

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/otcdex-network/otcdex-daemon/internal/core/domain"
)

const swapSequenceKey = "swapSequence"

// swapRow is the persisted shape of a swap together with its registry id.
type swapRow struct {
	Id   uint64 `badgerhold:"key"`
	Swap domain.Swap
}

// swapSequence is the owned monotonic counter of the registry, updated in the
// same transaction as the insert so that ids stay gapless even when a creation
// fails.
type swapSequence struct {
	Last uint64
}

type swapRepositoryImpl struct {
	store *badgerhold.Store
}

// NewSwapRepositoryImpl initializes a badger implementation of the
// domain.SwapRepository.
func NewSwapRepositoryImpl(store *badgerhold.Store) domain.SwapRepository {
	return swapRepositoryImpl{store}
}

func (r swapRepositoryImpl) AddSwap(
	_ context.Context, swap *domain.Swap,
) (uint64, error) {
	var id uint64
	err := r.store.Badger().Update(func(tx *badger.Txn) error {
		var seq swapSequence
		if err := r.store.TxGet(tx, swapSequenceKey, &seq); err != nil &&
			err != badgerhold.ErrNotFound {
			return err
		}
		seq.Last++
		if err := r.store.TxUpsert(tx, swapSequenceKey, seq); err != nil {
			return err
		}

		id = seq.Last
		return r.store.TxInsert(tx, id, swapRow{Id: id, Swap: *swap})
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r swapRepositoryImpl) GetSwap(
	_ context.Context, id uint64,
) (*domain.Swap, error) {
	var row swapRow
	if err := r.store.Get(id, &row); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrSwapNotFound
		}
		return nil, err
	}
	return &row.Swap, nil
}

func (r swapRepositoryImpl) GetAllSwaps(
	_ context.Context,
) ([]domain.SwapRecord, error) {
	var rows []swapRow
	if err := r.store.Find(&rows, nil); err != nil {
		return nil, err
	}

	records := make([]domain.SwapRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.SwapRecord{Id: row.Id, Swap: row.Swap})
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
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		var row swapRow
		if err := r.store.TxGet(tx, id, &row); err != nil {
			if err != badgerhold.ErrNotFound {
				return err
			}
			// unknown ids yield the zero-valued swap, whose deadline reads
			// as 0.
			row = swapRow{Id: id}
		}

		updatedSwap, err := updateFn(&row.Swap)
		if err != nil {
			return err
		}

		return r.store.TxUpsert(tx, id, swapRow{Id: id, Swap: *updatedSwap})
	})
}
