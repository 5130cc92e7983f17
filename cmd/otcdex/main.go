package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/otcdex-network/otcdex-daemon/internal/config"
	"github.com/otcdex-network/otcdex-daemon/internal/core/application"
	"github.com/otcdex-network/otcdex-daemon/internal/core/ports"
	"github.com/otcdex-network/otcdex-daemon/internal/infrastructure/gateway/httpgateway"
	"github.com/otcdex-network/otcdex-daemon/internal/infrastructure/gateway/loggateway"
	logpubsub "github.com/otcdex-network/otcdex-daemon/internal/infrastructure/pubsub"
	dbbadger "github.com/otcdex-network/otcdex-daemon/internal/infrastructure/storage/db/badger"
	"github.com/otcdex-network/otcdex-daemon/internal/infrastructure/storage/db/inmemory"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "otcdex CLI"
	app.Usage = "Command line interface to manage direct OTC basket swaps"
	app.Before = func(ctx *cli.Context) error {
		log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
		return nil
	}
	app.Commands = append(
		app.Commands,
		&createswap,
		&acceptswap,
		&cancelswap,
		&getswap,
		&listswaps,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func getSwapService() (*application.SwapService, func(), error) {
	repoManager, err := getRepoManager()
	if err != nil {
		return nil, nil, err
	}

	gateway, err := getTransferGateway()
	if err != nil {
		repoManager.Close()
		return nil, nil, err
	}

	svc, err := application.NewSwapService(
		repoManager, gateway, logpubsub.NewService(),
	)
	if err != nil {
		repoManager.Close()
		return nil, nil, err
	}

	cleanup := func() { repoManager.Close() }
	return svc, cleanup, nil
}

func getTransferGateway() (ports.TransferGateway, error) {
	if config.GetBool(config.NoGatewayKey) {
		return loggateway.NewService(), nil
	}
	return httpgateway.NewService(
		config.GetString(config.GatewayAddrKey), config.GetGatewayTimeout(),
	)
}

func getRepoManager() (ports.RepoManager, error) {
	if config.GetString(config.DBTypeKey) == config.DBTypeInmemory {
		return inmemory.NewRepoManager(), nil
	}

	dbDir, err := config.GetDbDir()
	if err != nil {
		return nil, err
	}
	return dbbadger.NewRepoManager(dbDir, nil)
}

func printRespJSON(resp interface{}) {
	buf, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(buf))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[otcdex] %v\n", err)
	os.Exit(1)
}
