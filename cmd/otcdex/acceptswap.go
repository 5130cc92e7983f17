package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var acceptswap = cli.Command{
	Name:  "accept",
	Usage: "accept a swap, executing its transfers",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:     "id",
			Usage:    "identifier of the swap to accept",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "from",
			Usage:    "identity of the accepting counterparty",
			Required: true,
		},
	},
	Action: acceptSwapAction,
}

func acceptSwapAction(ctx *cli.Context) error {
	svc, cleanup, err := getSwapService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.AcceptSwap(
		context.Background(), ctx.String("from"), ctx.Uint64("id"),
	); err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{"accepted": ctx.Uint64("id")})

	return nil
}
