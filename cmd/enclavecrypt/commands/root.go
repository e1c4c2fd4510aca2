package commands

import (
	"github.com/spf13/cobra"

	"enclavecrypt/internal/app"
)

var (
	cfg    app.Config
	appCtx *app.Wire
)

func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and closes the wire on every path, including a failing
// RunE, which skips the post-run hooks.
func execute(root *cobra.Command) error {
	defer func() {
		if appCtx != nil {
			// Sync on a terminal stderr reports EINVAL; nothing to act on.
			_ = appCtx.Close()
			appCtx = nil
		}
	}()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	cfg = app.Config{}
	root := &cobra.Command{
		Use:          "enclavecrypt",
		Short:        "P-256, CMAC and SHA-256 primitives over the host crypto engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&cfg.Engine, "engine", app.EngineSoftware, "crypto engine: software or sgx")
	f.StringVar(&cfg.Log.Level, "log-level", "warn", "log level: debug, info, warn, error")
	f.StringVar(&cfg.Log.Format, "log-format", "console", "log format: console or json")
	f.StringVar(&cfg.Log.File, "log-file", "", "also write JSON logs to this rotating file")

	root.AddCommand(
		keygenCmd(),
		sharedCmd(),
		deriveCmd(),
		signCmd(),
		verifyCmd(),
		cmacCmd(),
		sha256Cmd(),
		handshakeCmd(),
		selftestCmd(),
	)
	return root
}
