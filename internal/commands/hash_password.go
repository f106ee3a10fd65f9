package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/roundup_ledger/internal/utils"
	"github.com/spf13/cobra"
)

// newHashPasswordCommand prints a bcrypt hash for ADMIN_PASSWORD_HASH.
// The password is read from stdin so it does not end up in shell history.
func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Read a password from stdin and print its bcrypt hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("reading password: %w", err)
			}
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return errors.New("password must not be empty")
			}

			hash, err := utils.HashPassword(password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}
