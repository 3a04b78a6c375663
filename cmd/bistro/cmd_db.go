package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bistro-boss-server/config"
	"bistro-boss-server/database/seeders"
	"bistro-boss-server/pkg/database"
)

// bistro seed: populate the read-only collections (menu, reviews).
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the menu and review collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, db, err := database.Connect(ctx, config.MongoURI(), config.MongoDB())
		if err != nil {
			return err
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		if err := database.EnsureIndexes(ctx, db); err != nil {
			return err
		}

		fmt.Println("Seeding database…")
		return seeders.RunAll(ctx, db)
	},
}
