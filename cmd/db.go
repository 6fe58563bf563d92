package cmd

import (
	"fmt"

	"clinical-trial-system/config"
	"clinical-trial-system/internal/global/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "One-shot database scripts",
	Long: `One-shot database scripts. These are not a migration tool:
setup creates missing tables, reset drops and recreates them, seed loads demo data.`,
}

var dbSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the users, trials, participants and activities tables",
	RunE: withDB(func(db *gorm.DB) error {
		if err := database.Setup(db); err != nil {
			return err
		}
		fmt.Println("Tables created.")
		return nil
	}),
}

var dbResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop and recreate all tables",
	RunE: withDB(func(db *gorm.DB) error {
		if err := database.Reset(db); err != nil {
			return err
		}
		fmt.Println("Tables dropped and recreated.")
		return nil
	}),
}

var dbSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace business data with demo data (root admin, 3 trials, 5 participants)",
	RunE: withDB(func(db *gorm.DB) error {
		if err := database.Seed(db); err != nil {
			return err
		}
		fmt.Println("Demo data loaded. Log in as root / root.")
		return nil
	}),
}

func init() {
	dbCmd.AddCommand(dbSetupCmd, dbResetCmd, dbSeedCmd)
}

func withDB(fn func(db *gorm.DB) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		config.Init()
		database.Init()
		sqlDB, err := database.DB.DB()
		if err != nil {
			return err
		}
		defer func() { _ = sqlDB.Close() }()
		return fn(database.DB)
	}
}
