package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anyulbade/billplz/internal/config"
	"github.com/anyulbade/billplz/internal/database"
	"github.com/anyulbade/billplz/internal/repository"
	"github.com/anyulbade/billplz/internal/service"
	"github.com/anyulbade/billplz/pkg/billplz"
)

// app holds what the commands share: global flags and the lazily built
// service graph.
type app struct {
	configPath string
	pretty     bool
	version    string

	cfg     *config.Config
	pool    *pgxpool.Pool
	journal *service.JournalService
	tools   *service.ToolService
}

func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(&app{version: version})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "billplz",
		Short:         "CLI and MCP server for the Billplz payment API",
		Version:       a.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&a.pretty, "pretty", false, "Output formatted JSON")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.billplz/config.toml)")

	root.AddCommand(
		newCollectionCommand(a),
		newBillCommand(a),
		newBankCommand(a),
		newPayoutCommand(a),
		newPayoutCollectionCommand(a),
		newMCPCommand(a),
		newServeCommand(a),
		newJournalCommand(a),
	)
	a.releaseAfterRun(root)
	return root
}

// releaseAfterRun closes the journal pool when a command returns, on
// failure as well as on success.
func (a *app) releaseAfterRun(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			defer a.close()
			return run(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		a.releaseAfterRun(sub)
	}
}

func (a *app) loadConfig(defaultLevel zerolog.Level) error {
	if a.cfg != nil {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := defaultLevel
	if cfg.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("parse log_level: %w", err)
		}
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// setup builds the client and tool service. The journal is attached when
// database_url is set; if it cannot be opened the tools still run.
func (a *app) setup(ctx context.Context, defaultLevel zerolog.Level) error {
	if a.tools != nil {
		return nil
	}
	if err := a.loadConfig(defaultLevel); err != nil {
		return err
	}

	client := a.cfg.NewClient(billplz.WithLogger(log.Logger))

	var recorder service.Recorder
	if a.cfg.DatabaseURL != "" {
		if err := a.openJournal(ctx); err != nil {
			log.Warn().Err(err).Msg("journal unavailable, continuing without it")
		} else {
			recorder = a.journal
		}
	}

	a.tools = service.NewToolService(client, recorder)
	return nil
}

func (a *app) openJournal(ctx context.Context) error {
	if a.journal != nil {
		return nil
	}

	pool, err := database.NewPool(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect journal database: %w", err)
	}

	if a.cfg.AutoMigrate {
		if err := database.RunMigrations(a.cfg.DatabaseURL); err != nil {
			pool.Close()
			return err
		}
	}

	a.pool = pool
	a.journal = service.NewJournalService(repository.NewJournalRepository(pool), repository.NewStatsRepository(pool))
	return nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}

// invoke runs one tool and prints its result as JSON.
func (a *app) invoke(cmd *cobra.Command, tool string, input any) error {
	if err := a.setup(cmd.Context(), zerolog.WarnLevel); err != nil {
		return err
	}

	res, err := a.tools.Invoke(cmd.Context(), tool, input)
	if err != nil {
		return err
	}

	data, err := res.JSON(a.pretty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func (a *app) print(cmd *cobra.Command, v any) error {
	data, err := marshal(v, a.pretty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
