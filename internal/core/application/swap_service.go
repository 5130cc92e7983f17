package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/otcdex-network/otcdex-daemon/internal/core/domain"
	"github.com/otcdex-network/otcdex-daemon/internal/core/ports"
)

// SwapService exposes the swap lifecycle operations: creation, acceptance,
// cancellation and reads. Every operation is a single atomic unit of work,
// either all of its effects commit or none do.
type SwapService struct {
	repoManager ports.RepoManager
	gateway     ports.TransferGateway
	publisher   ports.SwapPublisher
}

func NewSwapService(
	repoManager ports.RepoManager,
	gateway ports.TransferGateway,
	publisher ports.SwapPublisher,
) (*SwapService, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if gateway == nil {
		return nil, fmt.Errorf("missing transfer gateway")
	}
	if publisher == nil {
		return nil, fmt.Errorf("missing swap publisher")
	}

	return &SwapService{repoManager, gateway, publisher}, nil
}

// CreateSwap registers the given swap on behalf of its owner and returns the
// assigned identifier. The caller-supplied expiry duration is rewritten as an
// absolute deadline, creation time + duration. The non-zero expiry check here
// is looser than the one-day floor applied by NewSwap: both validation paths
// are kept independent on purpose.
func (s *SwapService) CreateSwap(
	ctx context.Context, caller string, swap *domain.Swap,
) (uint64, error) {
	if swap.Owner == "" || caller != swap.Owner {
		return 0, domain.ErrInvalidAddress
	}
	if swap.Expiry <= 0 {
		return 0, domain.ErrInvalidExpiryDate
	}
	if len(swap.Biding) == 0 || len(swap.Asking) == 0 {
		return 0, domain.ErrInvalidAssetsLength
	}

	stamped := *swap
	stamped.Expiry = time.Now().Unix() + swap.Expiry

	id, err := s.repoManager.SwapRepository().AddSwap(ctx, &stamped)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"id":     id,
		"owner":  swap.Owner,
		"expiry": stamped.Expiry,
	}).Debug("swap created")
	s.publish(ports.TopicSwapCreated, id)

	return id, nil
}

// AcceptSwap consumes the swap and executes its transfers through the
// TransferGateway capability of each referenced contract. The stored deadline
// is zeroed before the first external call, then the asking assets move from
// the caller to the owner and the biding assets from the owner to the caller,
// both in array order. Any transfer failure aborts the whole operation,
// including the consume mutation.
func (s *SwapService) AcceptSwap(
	ctx context.Context, caller string, id uint64,
) error {
	err := s.repoManager.SwapRepository().UpdateSwap(
		ctx, id, func(swap *domain.Swap) (*domain.Swap, error) {
			if err := swap.Accept(caller); err != nil {
				return nil, err
			}

			for _, asset := range swap.Asking {
				if err := s.transfer(ctx, asset, caller, swap.Owner); err != nil {
					return nil, err
				}
			}
			for _, asset := range swap.Biding {
				if err := s.transfer(ctx, asset, swap.Owner, caller); err != nil {
					return nil, err
				}
			}
			return swap, nil
		},
	)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"id": id, "counterparty": caller}).Debug("swap accepted")
	s.publish(ports.TopicSwapAccepted, id)

	return nil
}

// CancelSwap voids the swap on behalf of its owner. A swap past its deadline
// can no longer be cancelled.
func (s *SwapService) CancelSwap(
	ctx context.Context, caller string, id uint64,
) error {
	err := s.repoManager.SwapRepository().UpdateSwap(
		ctx, id, func(swap *domain.Swap) (*domain.Swap, error) {
			if err := swap.Cancel(caller); err != nil {
				return nil, err
			}
			return swap, nil
		},
	)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"id": id}).Debug("swap cancelled")
	s.publish(ports.TopicSwapCancelled, id)

	return nil
}

// GetSwap returns the stored record for the given id, or ErrSwapNotFound.
func (s *SwapService) GetSwap(
	ctx context.Context, id uint64,
) (*domain.Swap, error) {
	return s.repoManager.SwapRepository().GetSwap(ctx, id)
}

// ListSwaps returns every stored swap with its identifier.
func (s *SwapService) ListSwaps(ctx context.Context) ([]domain.SwapRecord, error) {
	return s.repoManager.SwapRepository().GetAllSwaps(ctx)
}

func (s *SwapService) transfer(
	ctx context.Context, asset domain.Asset, from, to string,
) error {
	err := s.gateway.TransferFrom(ctx, asset.Contract, from, to, asset.AmountOrId)
	if err != nil {
		if asset.Type == domain.AssetFunctionCall {
			return fmt.Errorf("%w: %v", domain.ErrInvalidFunctionCall, err)
		}
		return err
	}
	return nil
}

func (s *SwapService) publish(topic string, id uint64) {
	event := ports.SwapEvent{
		Id:        uuid.New().String(),
		Topic:     topic,
		SwapId:    id,
		Timestamp: time.Now().Unix(),
	}
	if err := s.publisher.Publish(event); err != nil {
		log.WithError(err).Warnf("failed to publish %s event", topic)
	}
}
