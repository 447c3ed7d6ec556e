// Command connreg resolves connection strings (and optionally collections)
// through a connect.Registry and prints a JSON report.
//
// Usage:
//
//	connreg <uri | json> [collections-json]
//
// Examples:
//
//	connreg mongodb://localhost:27017/app
//	connreg mongodb://localhost:27017/app '["users", "orders"]'
//	connreg '["mongodb://a/app", "mongodb://b/crm"]'
//	connreg '{"mongodb://a/app": {"u": "users"}}'
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/qq1060656096/connreg/connect"
	"github.com/qq1060656096/connreg/driver/mongodb"
	"github.com/qq1060656096/connreg/driver/mysqldb"
	"github.com/qq1060656096/connreg/internal/logger"
	"github.com/qq1060656096/connreg/internal/settings"
)

var errUsage = errors.New("usage: connreg <uri | json> [collections-json]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	target, collections := args[0], ""
	if len(args) == 2 {
		collections = args[1]
	}

	s, err := settings.NewSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	log, err := logger.Setup(stderr, s.LogLevel, s.LogFormat)
	if err != nil {
		return err
	}

	driver, err := newDriver(s)
	if err != nil {
		return err
	}

	req, err := connect.ParseRequest(target, collections)
	if err != nil {
		return err
	}

	reg := connect.New(driver, connect.WithLogger(log))
	return resolve(ctx, reg, req, s, log, stdout)
}

func resolve(ctx context.Context, reg *connect.Registry, req connect.Request, s *settings.Settings, log zerolog.Logger, stdout io.Writer) error {
	if s.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.ConnectTimeout)
		defer cancel()
	}

	log.Debug().Str("kind", req.Kind().String()).Str("driver", s.Driver).Msg("Resolving request")

	resp, err := reg.Connect(ctx, req)
	if err != nil {
		return err
	}

	out, err := connect.Report(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// newDriver creates the driver named by settings.
func newDriver(s *settings.Settings) (connect.Driver, error) {
	switch s.Driver {
	case "mongodb", "mongo":
		return mongodb.New(s.MongoDefaultDatabase), nil
	case "mysql":
		return mysqldb.New(func(cfg *mysql.Config) {
			cfg.Timeout = s.MySQLDialTimeout
			cfg.ReadTimeout = s.MySQLQueryTimeout
			cfg.WriteTimeout = s.MySQLQueryTimeout
		}), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", s.Driver)
	}
}
