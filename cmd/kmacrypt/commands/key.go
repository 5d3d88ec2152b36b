package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keyCmd() *cobra.Command {
	var publicPath, privatePath string
	var noPrivate bool
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Derive a key pair from the passphrase and write it out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			publicPath = orDefault(publicPath, appCtx.Config.Files.PublicKey)
			privatePath = orDefault(privatePath, appCtx.Config.Files.PrivateKey)
			if noPrivate {
				privatePath = ""
			}
			_, fp, err := appCtx.Keys.Generate(passphrase, publicPath, privatePath)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Public key written: %s\n", publicPath)
			if privatePath != "" {
				fmt.Fprintf(w, "Encrypted private key written: %s\n", privatePath)
			}
			fmt.Fprintf(w, "Fingerprint: %s\n", fp)
			return nil
		},
	}
	cmd.Flags().StringVar(&publicPath, "public", "", "public key file (default from config)")
	cmd.Flags().StringVar(&privatePath, "private", "", "private key file (default from config)")
	cmd.Flags().BoolVar(&noPrivate, "no-private", false, "do not write the private key file")
	return cmd
}

func fingerprintCmd() *cobra.Command {
	var publicPath string
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of a public key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := appCtx.Keys.Fingerprint(orDefault(publicPath, appCtx.Config.Files.PublicKey))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	cmd.Flags().StringVar(&publicPath, "public", "", "public key file (default from config)")
	return cmd
}
