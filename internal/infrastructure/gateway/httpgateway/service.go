package httpgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/otcdex-network/otcdex-daemon/internal/core/ports"
)

type service struct {
	addr       string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
}

// NewService returns a TransferGateway that reaches asset contracts through a
// JSON over HTTP bridge. Every contract is expected to serve the
// transfer-from capability at POST {addr}/contracts/{contract}/transfer-from.
func NewService(addr string, requestTimeout time.Duration) (ports.TransferGateway, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing gateway address")
	}

	return &service{
		addr:       addr,
		httpClient: &http.Client{Timeout: requestTimeout},
		cb:         newCircuitBreaker(),
	}, nil
}

func (s *service) TransferFrom(
	ctx context.Context, contract, from, to string, amountOrId uint64,
) error {
	payload, err := json.Marshal(map[string]interface{}{
		"from":       from,
		"to":         to,
		"amountOrId": amountOrId,
	})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/contracts/%s/transfer-from", s.addr, contract)

	_, err = s.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(
			ctx, http.MethodPost, url, bytes.NewBuffer(payload),
		)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := s.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(res.Body)
			return nil, fmt.Errorf(
				"transfer from %s failed with status %d: %s",
				contract, res.StatusCode, string(body),
			)
		}
		return nil, nil
	})
	return err
}

func newCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "transfer gateway",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && ratio >= 0.6
		},
	})
}
