package ports

import "context"

// TransferGateway is the capability every asset contract referenced by a swap
// must expose. Fungible and non-fungible assets map onto conventional
// balance/ownership transfer semantics, while FunctionCall assets reuse the
// same three-argument shape to trigger arbitrary gated side effects. The core
// only invokes the capability and propagates its failure.
type TransferGateway interface {
	TransferFrom(
		ctx context.Context,
		contract, from, to string,
		amountOrId uint64,
	) error
}
