package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// readMessage returns the contents of args[0], or one line typed on stdin
// when no file is given.
func readMessage(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return appCtx.Messages.ReadMessage(args[0])
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Enter message: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read message: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return []byte(strings.TrimSuffix(line, "\r")), nil
}

// orDefault returns v unless it is empty.
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
