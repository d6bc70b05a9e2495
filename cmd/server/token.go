package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	jwttoken "github.com/henriqueinonhe/intergalactic-federation-api/internal/jwt_token"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the write endpoints",
	Long: `Signs an access token with JWT_SIGNING_KEY for local development and
operations scripts.

Example:
  federation token --subject ops@federation --ttl 24h`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		if !cfg.AuthEnabled() {
			return errors.New("JWT_SIGNING_KEY is not set; write endpoints are unauthenticated")
		}
		ttl := tokenTTL
		if ttl == 0 {
			ttl = cfg.Auth.TokenTTL
		}
		token, err := jwttoken.NewJWTService(cfg.Auth.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience).
			GenerateAccessToken(tokenSubject, ttl)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "operator the token is issued to")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to JWT_TOKEN_TTL)")
	_ = tokenCmd.MarkFlagRequired("subject")
}
