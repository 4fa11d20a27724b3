package cli

import (
	"fmt"

	"github.com/Vovarama1992/cloudio/internal/delivery/web"
	"github.com/Vovarama1992/cloudio/internal/infra"
	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/cloudio/internal/tui"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func webCMD(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the search and catalog pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Web.Addr
			}

			var sessions ports.SessionStore
			if a.cfg.Redis.Addr != "" {
				rdb, err := infra.NewRedisClient(cmd.Context(), a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
				if err != nil {
					return err
				}
				defer rdb.Close()
				sessions = infra.NewRedisSessionStore(rdb, a.cfg.Session.TTL)
			} else {
				sessions = infra.NewMemorySessionStore(a.cfg.Session.TTL)
			}

			srv, err := web.NewServer(a.backend(), sessions, a.cfg.APIURL, a.log)
			if err != nil {
				return fmt.Errorf("init web server: %w", err)
			}

			a.log.Log(logger.LogEntry{
				Level:   "info",
				Message: "using backend",
				Fields:  map[string]any{"apiURL": a.cfg.APIURL, "redis": a.cfg.Redis.Addr != ""},
			})
			return serve("web", addr, srv.Routes(), a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default web.addr)")
	return cmd
}

func tuiCMD(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal search",
		RunE: func(cmd *cobra.Command, args []string) error {
			// log lines on stderr would draw over the alt screen
			return tui.Run(a.backend(), logger.NewZapLogger(zap.NewNop().Sugar()))
		},
	}
}
