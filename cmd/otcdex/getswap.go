package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var getswap = cli.Command{
	Name:  "get",
	Usage: "show a stored swap",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:     "id",
			Usage:    "identifier of the swap",
			Required: true,
		},
	},
	Action: getSwapAction,
}

var listswaps = cli.Command{
	Name:   "list",
	Usage:  "list all stored swaps",
	Action: listSwapsAction,
}

func getSwapAction(ctx *cli.Context) error {
	svc, cleanup, err := getSwapService()
	if err != nil {
		return err
	}
	defer cleanup()

	swap, err := svc.GetSwap(context.Background(), ctx.Uint64("id"))
	if err != nil {
		return err
	}

	printRespJSON(swap)

	return nil
}

func listSwapsAction(ctx *cli.Context) error {
	svc, cleanup, err := getSwapService()
	if err != nil {
		return err
	}
	defer cleanup()

	records, err := svc.ListSwaps(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(records)

	return nil
}
