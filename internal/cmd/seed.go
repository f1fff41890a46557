package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fakemart/fakemart/internal/config"
	"github.com/fakemart/fakemart/internal/database"
	"github.com/fakemart/fakemart/internal/gen"
)

var (
	seedSeed      uint64
	seedCustomers int
	seedProducts  int
	seedOrders    int
	dropFirst     bool
	schemaOnly    bool
	noProgress    bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and seed a MySQL database",
	Long: `Creates the dataset tables (customers, products, orders, order_items)
and populates them with a freshly generated dataset.

The database DSN comes from config.yaml or the FAKEMART_DB_DSN
environment variable. Rows are inserted in dependency order so foreign
keys hold throughout.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Uint64Var(&seedSeed, "seed", 0, "Seed for all random sources (0 = config default)")
	seedCmd.Flags().IntVar(&seedCustomers, "customers", -1, "Number of customers (-1 = config default)")
	seedCmd.Flags().IntVar(&seedProducts, "products", -1, "Number of products (-1 = config default)")
	seedCmd.Flags().IntVar(&seedOrders, "orders", -1, "Number of orders (-1 = config default)")
	seedCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing dataset tables before creating")
	seedCmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "Create schema only, skip data")
	seedCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the insert progress bar")
}

func runSeed(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up dataset database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing dataset tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	if schemaOnly {
		fmt.Println("✅ Schema created, skipping data.")
		return nil
	}

	if seedSeed == 0 {
		seedSeed = cfg.Generate.Seed
	}
	if seedCustomers < 0 {
		seedCustomers = cfg.Generate.Customers
	}
	if seedProducts < 0 {
		seedProducts = cfg.Generate.Products
	}
	if seedOrders < 0 {
		seedOrders = cfg.Generate.Orders
	}

	fmt.Printf("🎲 Generating dataset with seed %d...\n", seedSeed)
	g := gen.New(seedSeed, gen.WithLogger(log.Logger))
	ds, err := g.Dataset(gen.Counts{
		Customers: seedCustomers,
		Products:  seedProducts,
		Orders:    seedOrders,
	})
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}

	fmt.Println("📊 Inserting rows...")
	if err := db.InsertDataset(ds, !noProgress); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Println("✅ Database seeding complete!")
	return nil
}
