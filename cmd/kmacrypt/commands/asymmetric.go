package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ecencryptCmd() *cobra.Command {
	var publicPath, out string
	cmd := &cobra.Command{
		Use:   "ecencrypt [file]",
		Short: "Encrypt a file or a typed message to a public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			publicPath = orDefault(publicPath, appCtx.Config.Files.PublicKey)
			out = orDefault(out, appCtx.Config.Files.ECCryptogram)
			if err := appCtx.Asymmetric.Encrypt(publicPath, m, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "File encrypted: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&publicPath, "public", "", "recipient public key file (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "cryptogram file (default from config)")
	return cmd
}

func ecdecryptCmd() *cobra.Command {
	var privatePath, in, out string
	cmd := &cobra.Command{
		Use:   "ecdecrypt",
		Short: "Decrypt a public-key cryptogram with the passphrase",
		Long: "Decrypt a public-key cryptogram. The private key is derived from the\n" +
			"passphrase, or loaded from --private and decrypted with it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in = orDefault(in, appCtx.Config.Files.ECCryptogram)
			out = orDefault(out, appCtx.Config.Files.Message)
			d, err := appCtx.Asymmetric.Decrypt(passphrase, privatePath, in)
			if err != nil {
				return err
			}
			return writeDecrypted(cmd, d.Plaintext, d.TagValid, out)
		},
	}
	cmd.Flags().StringVar(&privatePath, "private", "", "encrypted private key file (default: derive from passphrase)")
	cmd.Flags().StringVarP(&in, "in", "i", "", "cryptogram file (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "recovered message file (default from config)")
	return cmd
}
