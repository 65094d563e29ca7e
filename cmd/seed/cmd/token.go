package cmd

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

type TokenOptions struct {
	Subject    string
	Role       string
	EmployeeID string
}

var topts TokenOptions

var tokenCmd = &cobra.Command{
	Use:   "token [flags]",
	Short: "Print a signed access token for local API calls.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var employeeID *string
		if topts.EmployeeID != "" {
			employeeID = &topts.EmployeeID
		}

		svc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
		token, expiresAt, err := svc.GenerateAccessToken(topts.Subject, auth.Role(topts.Role), employeeID)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&topts.Subject, "subject", "dev", "Token subject")
	tokenCmd.Flags().StringVarP(&topts.Role, "role", "r", string(auth.RoleAdmin), "admin or employee")
	tokenCmd.Flags().StringVarP(&topts.EmployeeID, "employee-id", "e", "", "Employee the token acts for")
}
