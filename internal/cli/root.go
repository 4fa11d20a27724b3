package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Vovarama1992/cloudio/internal/config"
	"github.com/Vovarama1992/cloudio/internal/infra"
	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfgPath string
	cfg     *config.Config
	log     *logger.ZapLogger

	in  io.Reader
	out io.Writer
	err io.Writer
}

func (a *app) backend() ports.BackendAPI {
	return infra.NewBackendClient(a.cfg.APIURL, a.cfg.HTTP.Timeout)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cloudio",
		Short:         "Media catalog and search",
		Long:          "Cloudio serves a media catalog API, a web front end and terminal clients for it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg

			if a.log == nil {
				zcore, err := zap.NewProduction()
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				a.log = logger.NewZapLogger(zcore.Sugar())
			}
			return nil
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.err)
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "config file (default ./cloudio.yaml if present)")

	root.AddCommand(
		apiCMD(a),
		webCMD(a),
		migrateCMD(a),
		tuiCMD(a),
		searchCMD(a),
		filesCMD(a),
		categoriesCMD(a),
	)
	return root
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
