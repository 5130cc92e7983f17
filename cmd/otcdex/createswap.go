package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/otcdex-network/otcdex-daemon/internal/core/domain"
)

var createswap = cli.Command{
	Name:  "create",
	Usage: "create a new swap from flat parallel asset lists",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "owner",
			Usage:    "identity of the swap proposer",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "counterparty",
			Usage: "restrict who may accept the swap, empty means anyone",
		},
		&cli.Int64Flag{
			Name:  "duration",
			Usage: "lifetime of the swap in seconds",
			Value: 2 * domain.MinExpiryDuration,
		},
		&cli.StringSliceFlag{
			Name:     "contract",
			Usage:    "contract reference of each asset, in order",
			Required: true,
		},
		&cli.Int64SliceFlag{
			Name:     "amount",
			Usage:    "amount, token id or call id of each asset, in order",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:     "type",
			Usage:    "type of each asset: fungible, nonfungible or functioncall",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "split",
			Usage:    "boundary index between the biding and the asking assets",
			Required: true,
		},
	},
	Action: createSwapAction,
}

func createSwapAction(ctx *cli.Context) error {
	owner := ctx.String("owner")
	contracts := ctx.StringSlice("contract")

	amountsOrIds := make([]uint64, 0, len(ctx.Int64Slice("amount")))
	for _, amount := range ctx.Int64Slice("amount") {
		if amount < 0 {
			return fmt.Errorf("amounts must not be negative")
		}
		amountsOrIds = append(amountsOrIds, uint64(amount))
	}

	types := make([]domain.AssetType, 0, len(ctx.StringSlice("type")))
	for _, label := range ctx.StringSlice("type") {
		typ, ok := domain.AssetTypeFromString(label)
		if !ok {
			return fmt.Errorf("unknown asset type: %s", label)
		}
		types = append(types, typ)
	}

	swap, err := domain.ComposeSwap(
		owner, ctx.Int64("duration"),
		contracts, amountsOrIds, types,
		ctx.Int("split"),
	)
	if err != nil {
		return err
	}
	swap.AllowedCounterparty = ctx.String("counterparty")

	svc, cleanup, err := getSwapService()
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := svc.CreateSwap(context.Background(), owner, swap)
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{"id": id})

	return nil
}
