// Command dbcheck runs a single connectivity probe against the check
// database and prints the outcome. It exits 0 whatever the outcome.
package main

import (
	"context"
	"fmt"
	"os"

	"dbprobe/config"
	"dbprobe/internal/adapter/console"
	mysqlStorage "dbprobe/internal/adapter/storage/mysql"
	"dbprobe/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Stdout belongs to the report; logs go to stderr.
	log := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Service: "dbcheck",
		Out:     os.Stderr,
	})

	if err := mysqlStorage.UseLogger(log); err != nil {
		log.Warn().Err(err).Msg("MySQL driver keeps its default logger")
	}

	prober, err := mysqlStorage.NewProber(cfg.Check.Database, mysqlStorage.CheckQuery, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid check configuration: %v\n", err)
		os.Exit(1)
	}

	result := console.Run(context.Background(), os.Stdout, prober)
	log.Debug().
		Str("status", string(result.Status)).
		Dur("took", result.Duration).
		Msg("check finished")
}
