package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kmacrypt/internal/crypto"
)

func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [file]",
		Short: "Print the KMAC hash of a file or a typed message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "h: %s\n", crypto.Hex(appCtx.Digest.Hash(m)))
			return nil
		},
	}
}

func tagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag [file]",
		Short: "Print the passphrase authentication tag of a file or a typed message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "t: %s\n", crypto.Hex(appCtx.Digest.Tag(passphrase, m)))
			return nil
		},
	}
}
