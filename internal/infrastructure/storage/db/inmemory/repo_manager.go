package inmemory

import (
	"sync"

	"github.com/otcdex-network/otcdex-daemon/internal/core/domain"
	"github.com/otcdex-network/otcdex-daemon/internal/core/ports"
)

// swapInmemoryStore holds the swap records and the owned monotonic counter in
// a single data structure guarded by one locker.
type swapInmemoryStore struct {
	swaps  map[uint64]domain.Swap
	lastId uint64
	locker *sync.Mutex
}

type repoManager struct {
	swapRepository domain.SwapRepository
}

// NewRepoManager returns a volatile ports.RepoManager implementation useful
// for testing and for running without persistence.
func NewRepoManager() ports.RepoManager {
	store := &swapInmemoryStore{
		swaps:  make(map[uint64]domain.Swap),
		locker: &sync.Mutex{},
	}
	return &repoManager{
		swapRepository: NewSwapRepositoryImpl(store),
	}
}

func (m *repoManager) SwapRepository() domain.SwapRepository {
	return m.swapRepository
}

func (m *repoManager) Close() {}
