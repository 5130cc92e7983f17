package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is thrown when a caller is not the owner or the
	// designated counterparty of a swap, or when an owner is the zero identity.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidAssetsLength is thrown when the biding or the asking side of a
	// swap is empty.
	ErrInvalidAssetsLength = errors.New("biding and asking assets must not be empty")
	// ErrInvalidExpiryDate is thrown when an expiry is zero, below the minimum
	// duration, or already elapsed, depending on the call site.
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	// ErrInvalidAssetType ...
	ErrInvalidAssetType = errors.New("invalid asset type")
	// ErrInvalidAmountOrCallId ...
	ErrInvalidAmountOrCallId = errors.New("amount or call id must not be zero")
	// ErrInvalidFunctionCall wraps the failure payload of a FunctionCall-typed
	// transfer.
	ErrInvalidFunctionCall = errors.New("function call failed")
	// ErrSwapNotFound is thrown when reading a swap id unknown to the registry.
	ErrSwapNotFound = errors.New("swap not found")
)

// MismatchingLengthsError is returned when the flat parallel slices given to
// ComposeSwap differ in length.
type MismatchingLengthsError struct {
	Contracts    int
	AmountsOrIds int
	Types        int
}

func (e MismatchingLengthsError) Error() string {
	return fmt.Sprintf(
		"mismatching lengths: %d contracts, %d amounts or ids, %d asset types",
		e.Contracts, e.AmountsOrIds, e.Types,
	)
}
