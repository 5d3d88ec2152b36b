package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func encryptCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "encrypt [file]",
		Short: "Encrypt a file or a typed message under the passphrase",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			out = orDefault(out, appCtx.Config.Files.Cryptogram)
			if err := appCtx.Symmetric.Encrypt(passphrase, m, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "File encrypted: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "cryptogram file (default from config)")
	return cmd
}

func decryptCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a symmetric cryptogram with the passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in = orDefault(in, appCtx.Config.Files.Cryptogram)
			out = orDefault(out, appCtx.Config.Files.Message)
			d, err := appCtx.Symmetric.Decrypt(passphrase, in)
			if err != nil {
				return err
			}
			return writeDecrypted(cmd, d.Plaintext, d.TagValid, out)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "cryptogram file (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "recovered message file (default from config)")
	return cmd
}

// writeDecrypted writes the recovered message whether or not its tag matched
// and tells the user which case occurred.
func writeDecrypted(cmd *cobra.Command, m []byte, tagValid bool, out string) error {
	if err := appCtx.Messages.WriteMessage(out, m); err != nil {
		return err
	}
	if tagValid {
		fmt.Fprintf(cmd.OutOrStdout(), "File successfully decrypted: %s\n", out)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "t' does not equal t. Unauthenticated output written to %s\n", out)
	}
	return nil
}
