// Package cli implements reportctl, a terminal front end to the report
// service. It opens the same store the API server uses.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/worklog/report-dashboard/internal/app"
	"github.com/worklog/report-dashboard/internal/infrastructure/config"
)

const envPrefix = "REPORTCTL"

// CLI is the reportctl command tree.
type CLI struct {
	v       *viper.Viper
	out     io.Writer
	log     zerolog.Logger
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI.
type Options struct {
	Output io.Writer
	Logger zerolog.Logger
}

func New(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	c := &CLI{v: viper.New(), out: opts.Output, log: opts.Logger}
	c.rootCmd = c.newRootCmd()
	return c
}

func (c *CLI) Execute(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, for tests.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reportctl",
		Short:         "Query and export dashboard reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.String("store", config.DriverMemory, "Blob store: memory, redis or mongo")
	f.String("redis-addr", "localhost:6379", "Redis address")
	f.String("redis-password", "", "Redis password")
	f.Int("redis-db", 0, "Redis database")
	f.String("redis-key-prefix", "", "Prefix for report keys in Redis")
	f.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
	f.String("mongo-db", "report_dashboard", "MongoDB database")
	f.Uint64("seed", 0, "Seed for generated data (0 = time based)")
	f.String("timezone", "UTC", "Timezone for date ranges")
	f.String("export-base-url", "https://exports.worklog.local/reports", "Base URL of export links")
	_ = c.v.BindPFlags(f)

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	cmd.AddCommand(
		c.newCategoriesCmd(),
		c.newViewCmd(),
		c.newStatsCmd(),
		c.newExportCmd(),
		c.newDownloadCmd(),
		c.newScheduleCmd(),
		c.newImportCmd(),
	)
	return cmd
}

// config maps flags and REPORTCTL_* variables onto the service config.
func (c *CLI) config() *config.Config {
	return &config.Config{
		StoreDriver: c.v.GetString("store"),
		Redis: config.RedisConfig{
			Addr:      c.v.GetString("redis-addr"),
			Password:  c.v.GetString("redis-password"),
			DB:        c.v.GetInt("redis-db"),
			KeyPrefix: c.v.GetString("redis-key-prefix"),
		},
		Mongo: config.MongoConfig{
			URI:      c.v.GetString("mongo-uri"),
			Database: c.v.GetString("mongo-db"),
		},
		Export:   config.ExportConfig{BaseURL: c.v.GetString("export-base-url")},
		Seed:     c.v.GetUint64("seed"),
		Timezone: c.v.GetString("timezone"),
	}
}

// withApp opens the store for one command and closes it afterwards.
func (c *CLI) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	a, err := app.Open(ctx, c.config(), c.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(context.WithoutCancel(ctx)); err != nil {
			c.log.Warn().Err(err).Msg("closing store")
		}
	}()
	return fn(ctx, a)
}
