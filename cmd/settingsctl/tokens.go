// ABOUTME: tokens subcommand: probes each environment's credential
// ABOUTME: Exits non-zero when any configured token is rejected

package main

import (
	"fmt"

	"settings-api/api/dto/mappers"

	"github.com/spf13/cobra"
)

func tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Manage API tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Verify the token of every environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.sync()

			client, err := a.client()
			if err != nil {
				return err
			}

			resp := mappers.ToTokenVerificationResponse(client.VerifyTokens(cmd.Context()))
			if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
			if !resp.AllValid {
				return fmt.Errorf("one or more tokens are invalid")
			}
			return nil
		},
	})

	return cmd
}
