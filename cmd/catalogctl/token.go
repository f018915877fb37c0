package main

import (
	"errors"

	"librarycatalog/internal/services/token"

	"github.com/spf13/cobra"
)

func NewTokenCmd(gf *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect access tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "verify <token>",
		Short: "Check a token against JWT_SECRET_KEY and print its subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.loadConfig(cmd)
			if err != nil {
				return err
			}

			tokens, err := token.NewService(cfg.JWTSecretKey, cfg.JWTAccessExpire)
			if err != nil {
				return err
			}

			subject, err := tokens.Verify(args[0])
			switch {
			case errors.Is(err, token.ErrTokenExpired):
				cmd.Println("expired")
				return err
			case err != nil:
				cmd.Println("invalid")
				return err
			}

			cmd.Printf("valid, subject %q\n", subject)
			return nil
		},
	})

	return cmd
}
