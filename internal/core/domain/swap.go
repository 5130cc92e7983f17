package domain

import "time"

// MinExpiryDuration is the minimum lifetime, in seconds, accepted when
// composing a swap. The registry itself only requires a non-zero duration,
// which deliberately remains a weaker, independent check.
const MinExpiryDuration int64 = 60 * 60 * 24

// Swap is the data structure representing a proposed exchange of a biding
// asset set for an asking asset set.
type Swap struct {
	Owner string
	// AllowedCounterparty restricts who may accept the swap. Empty means
	// anyone.
	AllowedCounterparty string
	// Expiry is a duration in seconds until the swap is persisted by the
	// registry, which rewrites it as an absolute unix deadline. 0 marks a
	// consumed or cancelled swap.
	Expiry int64
	Biding []Asset
	Asking []Asset
}

// NewSwap returns a validated swap whose expiry is still a duration, not yet
// an absolute deadline.
func NewSwap(owner string, expiry int64, biding, asking []Asset) (*Swap, error) {
	if expiry < MinExpiryDuration {
		return nil, ErrInvalidExpiryDate
	}
	if owner == "" {
		return nil, ErrInvalidAddress
	}
	if len(biding) == 0 || len(asking) == 0 {
		return nil, ErrInvalidAssetsLength
	}

	return &Swap{
		Owner:  owner,
		Expiry: expiry,
		Biding: biding,
		Asking: asking,
	}, nil
}

// ComposeSwap builds a swap from flat parallel slices, partitioning them at
// splitIndex: elements before it become the biding set, elements at or after
// it become the asking set. Bounds are left to the runtime, a split index
// beyond the input length panics like any slice bound violation instead of
// silently truncating.
func ComposeSwap(
	owner string, expiry int64,
	contracts []string, amountsOrIds []uint64, types []AssetType,
	splitIndex int,
) (*Swap, error) {
	if len(contracts) != len(amountsOrIds) || len(contracts) != len(types) {
		return nil, MismatchingLengthsError{
			Contracts:    len(contracts),
			AmountsOrIds: len(amountsOrIds),
			Types:        len(types),
		}
	}

	assets := make([]Asset, len(contracts))
	for i := range contracts {
		asset, err := NewAsset(contracts[i], amountsOrIds[i], types[i])
		if err != nil {
			return nil, err
		}
		assets[i] = asset
	}

	return NewSwap(owner, expiry, assets[:splitIndex], assets[splitIndex:])
}

// Accept authorizes the given counterparty and consumes the swap. The stored
// deadline is forced to 0 before any external transfer runs, so a concurrent
// or reentrant attempt against the same id fails its expiry check.
func (s *Swap) Accept(counterparty string) error {
	if s.AllowedCounterparty != "" && counterparty != s.AllowedCounterparty {
		return ErrInvalidAddress
	}
	if s.IsExpired() {
		return ErrInvalidExpiryDate
	}

	s.Expiry = 0
	return nil
}

// Cancel voids the swap on behalf of its owner. A swap past its deadline can
// no longer be cancelled and stays frozen as a dead record.
func (s *Swap) Cancel(caller string) error {
	if s.IsExpired() {
		return ErrInvalidExpiryDate
	}
	if caller != s.Owner {
		return ErrInvalidAddress
	}

	s.Expiry = 0
	return nil
}

// IsExpired returns whether the stored deadline has passed. A consumed or
// cancelled swap reads as expired, and so does the zero-valued record of an
// unknown id.
func (s *Swap) IsExpired() bool {
	return time.Now().Unix() > s.Expiry
}

// IsConsumed returns whether the swap reached a terminal state, either by
// acceptance or cancellation.
func (s *Swap) IsConsumed() bool {
	return s.Expiry == 0
}
