package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"dad-circles-backend/internal/app"
	"dad-circles-backend/internal/auth"
	"dad-circles-backend/internal/config"
	"dad-circles-backend/internal/database"
	"dad-circles-backend/internal/logger"
	"dad-circles-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a matching pass",
	Long: `Forms pending groups from the unmatched pool and prints the pass summary.

Example:
  matcher run --city Austin --state TX --dry-run`,
	Args: cobra.NoArgs,
	RunE: runPass,
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List groups, newest first",
	Args:  cobra.NoArgs,
	RunE:  listGroups,
}

var approveCmd = &cobra.Command{
	Use:   "approve [group-id]",
	Short: "Approve a pending group and email its introduction",
	Args:  cobra.ExactArgs(1),
	RunE:  approveGroup,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [group-id]",
	Short: "Delete a pending group and return its members to the pool",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteGroup,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin token for the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  mintToken,
}

var (
	runCity   string
	runState  string
	runDryRun bool

	groupsStatus   string
	groupsPage     int
	groupsPageSize int

	tokenEmail string
)

func init() {
	runCmd.Flags().StringVar(&runCity, "city", "", "only match members in this city (requires --state)")
	runCmd.Flags().StringVar(&runState, "state", "", "only match members in this state (requires --city)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "report the groups without writing them")

	groupsCmd.Flags().StringVar(&groupsStatus, "status", "", "pending, active or inactive")
	groupsCmd.Flags().IntVar(&groupsPage, "page", 1, "page number")
	groupsCmd.Flags().IntVar(&groupsPageSize, "page-size", 20, "groups per page")

	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "operator email carried in the token")
	_ = tokenCmd.MarkFlagRequired("email")
}

// openApp loads configuration, connects to Postgres and wires the services
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel, nil)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: gormlogger.Silent})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return app.New(ctx, cfg, db)
}

func runPass(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	summary, err := a.Matching.RunPass(cmd.Context(), &service.RunPassRequest{
		City:   runCity,
		State:  runState,
		DryRun: runDryRun,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), summary)
}

func listGroups(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	groups, err := a.Groups.ListGroups(groupsStatus, groupsPage, groupsPageSize)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), groups)
}

func approveGroup(cmd *cobra.Command, args []string) error {
	id, err := parseGroupID(args[0])
	if err != nil {
		return err
	}
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.Groups.Approve(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func deleteGroup(cmd *cobra.Command, args []string) error {
	id, err := parseGroupID(args[0])
	if err != nil {
		return err
	}
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.Groups.Delete(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func mintToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	tokens, err := auth.NewTokenService(cfg.JWTSecret, 0)
	if err != nil {
		return err
	}
	token, err := tokens.Generate(tokenEmail)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

func parseGroupID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid group ID %q: %w", raw, err)
	}
	return id, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
