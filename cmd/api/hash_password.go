package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/5w1tchy/nexus-admin/internal/auth"
	"github.com/5w1tchy/nexus-admin/internal/security/password"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print an argon2id hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd := args[0]
			if err := password.Validate(pwd); err != nil {
				return fmt.Errorf("password must be at least %d characters", password.MinLen)
			}
			phc, err := password.NewHasher(password.ParamsFromEnv()).Hash(pwd)
			if err != nil {
				return err
			}
			if s := auth.Rate(pwd); s.Score < 3 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s (score %d/4)\n", s.Warning, s.Score)
			}
			fmt.Fprintln(cmd.OutOrStdout(), phc)
			return nil
		},
	}
}
