package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Vovarama1992/cloudio/internal/delivery"
	"github.com/Vovarama1992/cloudio/internal/delivery/ws"
	"github.com/Vovarama1992/cloudio/internal/domain"
	"github.com/Vovarama1992/cloudio/internal/infra"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func apiCMD(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "api",
		Short: "Run the catalog and search REST backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.API.Addr
			}

			pool, db, err := openDatabase(cmd.Context(), a)
			if err != nil {
				return err
			}
			defer pool.Close()

			// the schema is brought up to date on every start
			if err := infra.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			categories := infra.NewPostgresCategoryRepo(db)
			files := infra.NewPostgresFileRepo(db)

			searcher, err := domain.NewSearcher(a.cfg.Search.Engine, files)
			if err != nil {
				return err
			}

			hub := ws.NewHub(a.log)
			catalog := domain.NewCatalogService(categories, files, hub)

			router := delivery.NewRouter(
				delivery.NewCatalogHandler(catalog, a.log),
				delivery.NewSearchHandler(searcher, a.log),
				hub,
				delivery.NewMetrics(),
			)
			return serve("api", addr, router, a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default api.addr)")
	return cmd
}

func migrateCMD(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, db, err := openDatabase(cmd.Context(), a)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := infra.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func openDatabase(ctx context.Context, a *app) (*pgxpool.Pool, *sql.DB, error) {
	if err := a.cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}
	pool, err := infra.NewPgxPool(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return pool, infra.OpenDB(pool), nil
}
