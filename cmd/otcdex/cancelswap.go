package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var cancelswap = cli.Command{
	Name:  "cancel",
	Usage: "void a swap before its deadline",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:     "id",
			Usage:    "identifier of the swap to cancel",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "from",
			Usage:    "identity of the swap owner",
			Required: true,
		},
	},
	Action: cancelSwapAction,
}

func cancelSwapAction(ctx *cli.Context) error {
	svc, cleanup, err := getSwapService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.CancelSwap(
		context.Background(), ctx.String("from"), ctx.Uint64("id"),
	); err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{"cancelled": ctx.Uint64("id")})

	return nil
}
