// Command blogctl runs schema and seed operations against the blog database.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"blogcms/internal/config"
	"blogcms/internal/database"
	"blogcms/internal/seed"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Blog CMS database tooling",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd())
	return root
}

// openDB connects without applying the schema so each subcommand decides what runs.
func openDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, db, nil
}

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, inspect or roll back schema changes",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending SQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.RunMigrations(cmd.Context(), db); err != nil {
				return fmt.Errorf("sql migrations failed: %w", err)
			}
			log.Println("sql migrations applied")
			return nil
		},
	}

	autoCmd := &cobra.Command{
		Use:   "auto",
		Short: "Create or extend tables from the models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			cfg.DBSchemaMode = database.SchemaModeAuto
			if err := database.ApplySchema(cmd.Context(), db, cfg); err != nil {
				return fmt.Errorf("auto schema apply failed: %w", err)
			}
			log.Println("automigrations applied")
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the schema mode and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			status, err := database.GetSchemaStatus(cmd.Context(), db, cfg)
			if err != nil {
				return fmt.Errorf("schema status failed: %w", err)
			}
			log.Printf("mode=%s env=%s run_sql=%t run_auto=%t applied=%d pending=%d",
				status.Mode, status.Environment, status.WillRunSQL, status.WillRunAutoMigrate,
				len(status.AppliedVersions), len(status.PendingMigrations))
			for _, m := range status.PendingMigrations {
				log.Printf("pending: %06d_%s", m.Version, m.Name)
			}
			return nil
		},
	}

	downCmd := &cobra.Command{
		Use:   "down <version>",
		Short: "Roll back one applied migration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			_, db, err := openDB()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.RollbackMigration(cmd.Context(), db, version); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			log.Printf("rolled back migration %d", version)
			return nil
		},
	}

	migrateCmd.AddCommand(upCmd, autoCmd, statusCmd, downCmd)
	return migrateCmd
}

func newSeedCmd() *cobra.Command {
	var opts seed.Options
	var fixturesPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with fixtures and generated content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			db, err := database.Connect(cfg)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer func() { _ = database.Close(db) }()

			fixtures, err := loadFixtures(fixturesPath)
			if err != nil {
				return err
			}

			log.Printf("Target: %d users, %d posts, %d comments per post, clean=%v",
				opts.NumUsers, opts.NumPosts, opts.CommentsPerPost, opts.ShouldClean)

			sum, err := seed.NewSeeder(db).Run(cmd.Context(), fixtures, opts)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			log.Printf("seeded categories=%d users=%d posts=%d comments=%d",
				sum.Categories, sum.Users, sum.Posts, sum.Comments)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.NumUsers, "users", 10, "Number of generated users")
	cmd.Flags().IntVar(&opts.NumPosts, "posts", 30, "Number of generated posts")
	cmd.Flags().IntVar(&opts.CommentsPerPost, "comments", 3, "Comments per post (some are replies)")
	cmd.Flags().BoolVar(&opts.ShouldClean, "clean", false, "Delete existing blog rows before seeding")
	cmd.Flags().Int64Var(&opts.RandomSeed, "seed", 0, "Random seed for generated content (0 picks one)")
	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "YAML fixtures file (defaults to the bundled set)")
	return cmd
}

func loadFixtures(path string) (*seed.Fixtures, error) {
	if path == "" {
		return seed.DefaultFixtures()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return seed.LoadFixtures(raw)
}
