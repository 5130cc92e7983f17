package loggateway

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/otcdex-network/otcdex-daemon/internal/core/ports"
)

type service struct{}

// NewService returns a TransferGateway that logs transfers instead of
// executing them. It never fails and moves no asset, useful for running
// without any contract bridge, typically together with the inmemory database.
func NewService() ports.TransferGateway {
	return &service{}
}

func (s *service) TransferFrom(
	_ context.Context, contract, from, to string, amountOrId uint64,
) error {
	log.WithFields(log.Fields{
		"contract":     contract,
		"from":         from,
		"to":           to,
		"amount_or_id": amountOrId,
	}).Info("transfer from")
	return nil
}
