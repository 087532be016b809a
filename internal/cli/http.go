package cli

import (
	"github.com/cantonlabs/ledgerview/internal/httpapi"
	"github.com/cantonlabs/ledgerview/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagHost string
	flagPort int
)

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Start the assistant server on HTTP",
	Long: `Starts the JSON REST facade.

The facade exposes the same tool and resource catalog as the stdio server;
both delegate to one dispatcher. Host and port default to the configuration
(or the LEDGERVIEW_HOST / LEDGERVIEW_PORT environment variables) and can be
overridden with flags.`,
	Args: cobra.NoArgs,
	RunE: runHTTP,
}

func init() {
	httpCmd.Flags().StringVar(&flagHost, "host", "", "Listen host (overrides config)")
	httpCmd.Flags().IntVar(&flagPort, "port", 0, "Listen port (overrides config)")
}

func runHTTP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagHost != "" {
		cfg.Server.Host = flagHost
	}
	if flagPort != 0 {
		cfg.Server.Port = flagPort
	}

	dispatcher, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	logger := logging.New("ledgerview")
	return httpapi.New(cfg, dispatcher, logger).ListenAndServe()
}
