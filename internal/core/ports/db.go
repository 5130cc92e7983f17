package ports

import (
	"github.com/otcdex-network/otcdex-daemon/internal/core/domain"
)

// RepoManager gives access to the repositories of the storage layer in use.
type RepoManager interface {
	// SwapRepository returns the repository of the swap registry.
	SwapRepository() domain.SwapRepository
	// Close gracefully closes the connection with the underlying storage.
	Close()
}
