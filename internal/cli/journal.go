package cli

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/anyulbade/billplz/internal/database"
	"github.com/anyulbade/billplz/internal/dto"
	"github.com/anyulbade/billplz/internal/repository"
)

var errNoDatabase = errors.New("journal requires database_url (BILLPLZ_DATABASE_URL)")

func newJournalCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "journal", Short: "Inspect the operation journal"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded tool invocations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireDatabase(); err != nil {
				return err
			}
			if err := a.openJournal(cmd.Context()); err != nil {
				return err
			}

			flags := cmd.Flags()
			page, _ := flags.GetInt("page")
			pageSize, _ := flags.GetInt("page-size")
			tool, _ := flags.GetString("tool")
			p := dto.NewPaginationParams(page, pageSize)

			entries, total, err := a.journal.List(cmd.Context(), tool, p.PageSize, p.Offset)
			if err != nil {
				return err
			}
			return a.print(cmd, dto.JournalListResponse{
				Data:       entries,
				Pagination: dto.NewPagination(p.Page, p.PageSize, total),
			})
		},
	}
	list.Flags().Int("page", 1, "Page number")
	list.Flags().Int("page-size", dto.DefaultPageSize, "Entries per page (max 100)")
	list.Flags().String("tool", "", "Only show this tool")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Summarize call counts, success rate and latency per tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireDatabase(); err != nil {
				return err
			}

			flags := cmd.Flags()
			sinceFlag, _ := flags.GetString("since")
			untilFlag, _ := flags.GetString("until")
			window, err := dto.ParseTimeRange(sinceFlag, untilFlag)
			if err != nil {
				return err
			}

			if err := a.openJournal(cmd.Context()); err != nil {
				return err
			}

			f := repository.StatsFilter{Since: window.Since, Until: window.Until}
			f.SortBy, _ = flags.GetString("sort-by")
			f.Order, _ = flags.GetString("order")

			data, summary, err := a.journal.Stats(cmd.Context(), f)
			if err != nil {
				return err
			}
			return a.print(cmd, dto.JournalStatsResponse{Data: data, Summary: summary})
		},
	}
	stats.Flags().String("since", "", "Only count calls at or after this time (RFC 3339 or YYYY-MM-DD)")
	stats.Flags().String("until", "", "Only count calls up to this time; a plain date includes that whole day")
	stats.Flags().String("sort-by", "call_count", "call_count, success_rate, avg_duration_ms, last_called_at or tool")
	stats.Flags().String("order", "desc", "asc or desc")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply journal schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireDatabase(); err != nil {
				return err
			}
			return database.RunMigrations(a.cfg.DatabaseURL)
		},
	}

	rollback := &cobra.Command{
		Use:   "rollback",
		Short: "Roll back all journal schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireDatabase(); err != nil {
				return err
			}
			return database.RollbackMigrations(a.cfg.DatabaseURL)
		},
	}

	cmd.AddCommand(list, stats, migrate, rollback)
	return cmd
}

func (a *app) requireDatabase() error {
	if err := a.loadConfig(zerolog.InfoLevel); err != nil {
		return err
	}
	if a.cfg.DatabaseURL == "" {
		return errNoDatabase
	}
	return nil
}
