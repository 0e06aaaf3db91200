package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lexforge/internal/app/middleware"
)

var (
	tokenUser   string
	tokenSecret string
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a JWT for a user id",
	Long: `Signs an HS256 token with the secret from [JWT] Token (or --secret).
Useful for calling authenticated routes from scripts.`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "User id (required)")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Override the signing secret")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Override token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	jwtCfg := cfg.JWT
	if tokenSecret != "" {
		jwtCfg.Token = tokenSecret
	}
	if tokenTTL > 0 {
		jwtCfg.ExpiresIn = tokenTTL
	}

	token, err := middleware.NewToken(jwtCfg, tokenUser)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
