package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/otcdex-network/otcdex-daemon/internal/core/domain"
)

const (
	ownerAddr        = "0xaaa"
	counterpartyAddr = "0xbbb"
	tokenContract    = "0xf00"
	nftContract      = "0xba5"
)

func TestNewSwap(t *testing.T) {
	swap, err := domain.NewSwap(
		ownerAddr, 2*domain.MinExpiryDuration,
		newBidingAssets(t), newAskingAssets(t),
	)
	require.NoError(t, err)
	require.Equal(t, ownerAddr, swap.Owner)
	require.Empty(t, swap.AllowedCounterparty)
	require.Equal(t, 2*domain.MinExpiryDuration, swap.Expiry)
	require.Len(t, swap.Biding, 1)
	require.Len(t, swap.Asking, 1)
}

func TestFailingNewSwap(t *testing.T) {
	biding, asking := newBidingAssets(t), newAskingAssets(t)

	tests := []struct {
		name        string
		owner       string
		expiry      int64
		biding      []domain.Asset
		asking      []domain.Asset
		expectedErr error
	}{
		{
			name:        "expiry_below_one_day",
			owner:       ownerAddr,
			expiry:      domain.MinExpiryDuration - 1,
			biding:      biding,
			asking:      asking,
			expectedErr: domain.ErrInvalidExpiryDate,
		},
		{
			name:        "zero_owner",
			owner:       "",
			expiry:      domain.MinExpiryDuration,
			biding:      biding,
			asking:      asking,
			expectedErr: domain.ErrInvalidAddress,
		},
		{
			name:        "empty_biding",
			owner:       ownerAddr,
			expiry:      domain.MinExpiryDuration,
			biding:      nil,
			asking:      asking,
			expectedErr: domain.ErrInvalidAssetsLength,
		},
		{
			name:        "empty_asking",
			owner:       ownerAddr,
			expiry:      domain.MinExpiryDuration,
			biding:      biding,
			asking:      nil,
			expectedErr: domain.ErrInvalidAssetsLength,
		},
	}

	for i := range tests {
		tt := tests[i]

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewSwap(tt.owner, tt.expiry, tt.biding, tt.asking)
			require.EqualError(t, err, tt.expectedErr.Error())
		})
	}
}

func TestComposeSwap(t *testing.T) {
	contracts := []string{tokenContract, nftContract, nftContract}
	amountsOrIds := []uint64{1000, 1, 2}
	types := []domain.AssetType{
		domain.AssetFungible, domain.AssetNonFungible, domain.AssetNonFungible,
	}

	swap, err := domain.ComposeSwap(
		ownerAddr, 2*domain.MinExpiryDuration,
		contracts, amountsOrIds, types, 2,
	)
	require.NoError(t, err)
	require.Equal(t, []domain.Asset{
		{Contract: tokenContract, AmountOrId: 1000, Type: domain.AssetFungible},
		{Contract: nftContract, AmountOrId: 1, Type: domain.AssetNonFungible},
	}, swap.Biding)
	require.Equal(t, []domain.Asset{
		{Contract: nftContract, AmountOrId: 2, Type: domain.AssetNonFungible},
	}, swap.Asking)
}

func TestFailingComposeSwap(t *testing.T) {
	contracts := []string{tokenContract, nftContract}
	amountsOrIds := []uint64{1000, 7}
	types := []domain.AssetType{domain.AssetFungible, domain.AssetNonFungible}

	t.Run("mismatching_lengths", func(t *testing.T) {
		_, err := domain.ComposeSwap(
			ownerAddr, 2*domain.MinExpiryDuration,
			contracts, amountsOrIds[:1], types, 1,
		)
		require.Error(t, err)
		require.Equal(t, domain.MismatchingLengthsError{
			Contracts:    2,
			AmountsOrIds: 1,
			Types:        2,
		}, err)
	})

	t.Run("split_index_zero_yields_empty_biding", func(t *testing.T) {
		_, err := domain.ComposeSwap(
			ownerAddr, 2*domain.MinExpiryDuration,
			contracts, amountsOrIds, types, 0,
		)
		require.EqualError(t, err, domain.ErrInvalidAssetsLength.Error())
	})

	t.Run("split_index_at_length_yields_empty_asking", func(t *testing.T) {
		_, err := domain.ComposeSwap(
			ownerAddr, 2*domain.MinExpiryDuration,
			contracts, amountsOrIds, types, len(contracts),
		)
		require.EqualError(t, err, domain.ErrInvalidAssetsLength.Error())
	})

	t.Run("split_index_beyond_length_panics", func(t *testing.T) {
		require.Panics(t, func() {
			domain.ComposeSwap(
				ownerAddr, 2*domain.MinExpiryDuration,
				contracts, amountsOrIds, types, len(contracts)+1,
			)
		})
	})

	t.Run("invalid_asset_propagates", func(t *testing.T) {
		_, err := domain.ComposeSwap(
			ownerAddr, 2*domain.MinExpiryDuration,
			contracts, []uint64{0, 7}, types, 1,
		)
		require.EqualError(t, err, domain.ErrInvalidAmountOrCallId.Error())
	})
}

func TestSwapAccept(t *testing.T) {
	t.Run("open_swap", func(t *testing.T) {
		swap := newStampedSwap(t)
		err := swap.Accept(counterpartyAddr)
		require.NoError(t, err)
		require.Zero(t, swap.Expiry)
		require.True(t, swap.IsConsumed())
	})

	t.Run("designated_counterparty", func(t *testing.T) {
		swap := newStampedSwap(t)
		swap.AllowedCounterparty = counterpartyAddr

		err := swap.Accept("0xccc")
		require.EqualError(t, err, domain.ErrInvalidAddress.Error())
		require.NotZero(t, swap.Expiry)

		err = swap.Accept(counterpartyAddr)
		require.NoError(t, err)
		require.Zero(t, swap.Expiry)
	})

	t.Run("expired_swap", func(t *testing.T) {
		swap := newStampedSwap(t)
		swap.Expiry = time.Now().Unix() - 1

		err := swap.Accept(counterpartyAddr)
		require.EqualError(t, err, domain.ErrInvalidExpiryDate.Error())
	})

	t.Run("zero_valued_record", func(t *testing.T) {
		swap := &domain.Swap{}
		err := swap.Accept(counterpartyAddr)
		require.EqualError(t, err, domain.ErrInvalidExpiryDate.Error())
	})
}

func TestSwapCancel(t *testing.T) {
	t.Run("by_owner", func(t *testing.T) {
		swap := newStampedSwap(t)
		err := swap.Cancel(ownerAddr)
		require.NoError(t, err)
		require.Zero(t, swap.Expiry)
	})

	t.Run("by_non_owner", func(t *testing.T) {
		swap := newStampedSwap(t)
		err := swap.Cancel(counterpartyAddr)
		require.EqualError(t, err, domain.ErrInvalidAddress.Error())
		require.NotZero(t, swap.Expiry)
	})

	t.Run("expired_even_for_owner", func(t *testing.T) {
		swap := newStampedSwap(t)
		swap.Expiry = time.Now().Unix() - 1

		err := swap.Cancel(ownerAddr)
		require.EqualError(t, err, domain.ErrInvalidExpiryDate.Error())
	})

	t.Run("already_consumed", func(t *testing.T) {
		swap := newStampedSwap(t)
		require.NoError(t, swap.Accept(counterpartyAddr))

		err := swap.Cancel(ownerAddr)
		require.EqualError(t, err, domain.ErrInvalidExpiryDate.Error())
	})
}

func newBidingAssets(t *testing.T) []domain.Asset {
	t.Helper()
	asset, err := domain.NewAsset(tokenContract, 1000, domain.AssetFungible)
	require.NoError(t, err)
	return []domain.Asset{asset}
}

func newAskingAssets(t *testing.T) []domain.Asset {
	t.Helper()
	asset, err := domain.NewAsset(nftContract, 7, domain.AssetNonFungible)
	require.NoError(t, err)
	return []domain.Asset{asset}
}

// newStampedSwap returns a swap as the registry would store it, with an
// absolute deadline in the future.
func newStampedSwap(t *testing.T) *domain.Swap {
	t.Helper()
	swap, err := domain.NewSwap(
		ownerAddr, 2*domain.MinExpiryDuration,
		newBidingAssets(t), newAskingAssets(t),
	)
	require.NoError(t, err)
	swap.Expiry = time.Now().Unix() + swap.Expiry
	return swap
}
