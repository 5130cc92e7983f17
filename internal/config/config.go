package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory to store the internal state of
	// the daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// GatewayAddrKey is the address of the HTTP bridge serving the
	// transfer-from capability of the asset contracts
	GatewayAddrKey = "GATEWAY_ADDR"
	// GatewayTimeoutKey is the timeout in seconds applied to every gateway
	// request
	GatewayTimeoutKey = "GATEWAY_TIMEOUT"
	// NoGatewayKey is used to run without reaching any asset contract:
	// transfers are logged instead of executed, useful together with the
	// inmemory database
	NoGatewayKey = "NO_GATEWAY"

	DbLocation = "db"

	// DBTypeInmemory and DBTypeBadger are the supported database types.
	DBTypeInmemory = "inmemory"
	DBTypeBadger   = "badger"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("OTCDEX")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DBTypeKey, DBTypeBadger)
	vip.SetDefault(GatewayAddrKey, "http://localhost:9945")
	vip.SetDefault(GatewayTimeoutKey, 15)
	vip.SetDefault(NoGatewayKey, false)

	if err := validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %s\n", err)
		os.Exit(1)
	}
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the db location inside the datadir, creating it if needed.
func GetDbDir() (string, error) {
	dbDir := filepath.Join(GetDatadir(), DbLocation)
	if err := makeDirectoryIfNotExists(dbDir); err != nil {
		return "", err
	}
	return dbDir, nil
}

// GetGatewayTimeout returns the gateway request timeout as a duration.
func GetGatewayTimeout() time.Duration {
	return time.Duration(GetInt(GatewayTimeoutKey)) * time.Second
}

func validate() error {
	if len(GetString(DatadirKey)) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	switch dbType := GetString(DBTypeKey); dbType {
	case DBTypeInmemory, DBTypeBadger:
	default:
		return fmt.Errorf("unsupported database type: %s", dbType)
	}

	return nil
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".otcdex"
	}
	return filepath.Join(home, ".otcdex")
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
