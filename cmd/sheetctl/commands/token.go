package commands

import (
	"fmt"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/config"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	"github.com/Xenn-00/arbeitszeit-meister/internal/utils"
	"github.com/spf13/cobra"
)

var (
	tokenKey       string
	tokenUserID    string
	tokenName      string
	tokenRole      string
	tokenCompanyID string
	tokenTTL       time.Duration
)

// tokenCmd stellt Tokens für lokale Entwicklung aus; in Produktion übernimmt das der Login-Dienst.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Entwickler-Token (PASETO v4.local) ausstellen",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch entity.UserRole(tokenRole) {
		case entity.RoleAdmin, entity.RoleManager, entity.RoleStaff:
		default:
			return fmt.Errorf("unknown role %q", tokenRole)
		}

		key := tokenKey
		if key == "" {
			cfg := config.LoadConfig()
			if cfg == nil {
				return fmt.Errorf("no --key given and application.yaml could not be loaded")
			}
			key = cfg.APP_SECRET.Paseto.HexKey
		}

		maker, err := utils.NewPasetoMaker(key)
		if err != nil {
			return err
		}

		token, err := maker.CreateToken(utils.TokenClaims{
			UserID:    tokenUserID,
			Name:      tokenName,
			Role:      tokenRole,
			CompanyID: tokenCompanyID,
		}, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Neuen symmetrischen PASETO-Schlüssel als Hex ausgeben",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), utils.GenerateSymmetricKey())
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenKey, "key", "", "Hex-Schlüssel (Standard: APP_SECRET aus application.yaml)")
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "Benutzer-ID (subject)")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "Anzeigename")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(entity.RoleStaff), "admin, manager oder staff")
	tokenCmd.Flags().StringVar(&tokenCompanyID, "company-id", "", "Firmen-ID")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Gültigkeitsdauer")
	_ = tokenCmd.MarkFlagRequired("user-id")
}
