package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errInvalidSignature makes verify exit non-zero on a bad signature.
var errInvalidSignature = errors.New("signature is not valid")

func signCmd() *cobra.Command {
	var privatePath, out string
	cmd := &cobra.Command{
		Use:   "sign [file]",
		Short: "Sign a file or a typed message with the passphrase's private key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			out = orDefault(out, appCtx.Config.Files.Signature)
			if err := appCtx.Signatures.Sign(passphrase, privatePath, m, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signature written: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&privatePath, "private", "", "encrypted private key file (default: derive from passphrase)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "signature file (default from config)")
	return cmd
}

func verifyCmd() *cobra.Command {
	var publicPath, sigPath string
	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Verify a signature of a file or a typed message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			publicPath = orDefault(publicPath, appCtx.Config.Files.PublicKey)
			sigPath = orDefault(sigPath, appCtx.Config.Files.Signature)
			ok, err := appCtx.Signatures.Verify(publicPath, m, sigPath)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Signature is NOT valid")
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&publicPath, "public", "", "signer public key file (default from config)")
	cmd.Flags().StringVar(&sigPath, "sig", "", "signature file (default from config)")
	return cmd
}
