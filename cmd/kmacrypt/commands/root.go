package commands

import (
	"github.com/spf13/cobra"

	"kmacrypt/internal/app"
)

var (
	home       string
	configPath string
	dir        string
	logLevel   string
	passphrase string
	appCtx     *app.App
)

func init() {
	// HASH and hash name the same command.
	cobra.EnableCaseInsensitive = true
}

// Execute runs the kmacrypt CLI against os.Args.
func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and releases the app context, also when the command
// failed and cobra skipped its post-run hooks.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if appCtx != nil {
		if cerr := appCtx.Close(); err == nil {
			err = cerr
		}
		appCtx = nil
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kmacrypt",
		Short:         "KMAC hashing, symmetric and Ed448 public-key cryptography",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadEnvFile(""); err != nil {
				return err
			}
			if home == "" {
				h, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = h
			}
			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnv()
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("dir") {
				cfg.Dir = dir
			}

			appCtx, err = app.New(cfg, nil)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default $KMACRYPT_HOME or ~/.kmacrypt)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.toml)")
	root.PersistentFlags().StringVar(&dir, "dir", "", "directory for relative file names (default working dir)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase")

	root.AddCommand(
		hashCmd(),
		tagCmd(),
		encryptCmd(),
		decryptCmd(),
		keyCmd(),
		ecencryptCmd(),
		ecdecryptCmd(),
		signCmd(),
		verifyCmd(),
		fingerprintCmd(),
	)
	return root
}
