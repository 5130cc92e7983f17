package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/otcdex-network/otcdex-daemon/internal/core/domain"
	"github.com/otcdex-network/otcdex-daemon/internal/core/ports"
)

type repoManager struct {
	store          *badgerhold.Store
	swapRepository domain.SwapRepository
}

// NewRepoManager opens (or creates if not exists) the badger store on disk
// under the given data dir and returns a persistent ports.RepoManager
// implementation.
func NewRepoManager(dbDir string, logger badger.Logger) (ports.RepoManager, error) {
	store, err := createDb(filepath.Join(dbDir, "swaps"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening swaps db: %w", err)
	}

	return &repoManager{
		store:          store,
		swapRepository: NewSwapRepositoryImpl(store),
	}, nil
}

func (m *repoManager) SwapRepository() domain.SwapRepository {
	return m.swapRepository
}

func (m *repoManager) Close() {
	m.store.Close()
}

// JSONEncode is a custom JSON based encoder for badger.
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger.
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	return badgerhold.Open(badgerhold.Options{
		Encoder: JSONEncode,
		Decoder: JSONDecode,
		Options: opts,
	})
}
