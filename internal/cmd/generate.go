package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fakemart/fakemart/internal/config"
	"github.com/fakemart/fakemart/internal/export"
	"github.com/fakemart/fakemart/internal/gen"
)

var (
	genSeed      uint64
	genCustomers int
	genProducts  int
	genOrders    int
	genOut       string
	genPreview   int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and export it as CSV",
	Long: `Generate the full batch dataset (customers, products, orders and
order items) and write each table as a CSV file to the output directory.

The four stages run in dependency order: orders reference generated
customers, order items reference generated orders and products, and
every order total is back-filled from its items before export. The same
seed always produces byte-identical files.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "Seed for all random sources (0 = config default)")
	generateCmd.Flags().IntVar(&genCustomers, "customers", -1, "Number of customers (-1 = config default)")
	generateCmd.Flags().IntVar(&genProducts, "products", -1, "Number of products (-1 = config default)")
	generateCmd.Flags().IntVar(&genOrders, "orders", -1, "Number of orders (-1 = config default)")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Output directory (empty = config default)")
	generateCmd.Flags().IntVar(&genPreview, "preview", 5, "Head rows to print per table (0 disables)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyGenerateDefaults(&cfg.Generate)

	fmt.Printf("🎲 Generating dataset with seed %d (%d customers, %d products, %d orders)...\n",
		genSeed, genCustomers, genProducts, genOrders)

	g := gen.New(genSeed, gen.WithLogger(log.Logger))
	ds, err := g.Dataset(gen.Counts{
		Customers: genCustomers,
		Products:  genProducts,
		Orders:    genOrders,
	})
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}

	fmt.Printf("📦 Writing CSV files to %s...\n", genOut)
	if err := export.WriteCSV(genOut, ds); err != nil {
		return fmt.Errorf("failed to export dataset: %w", err)
	}

	if genPreview > 0 {
		printPreview(ds, genPreview)

		fmt.Println("\n=== SAMPLE WEBSITE EVENT ===")
		event, err := json.MarshalIndent(g.Event(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode sample event: %w", err)
		}
		fmt.Println(string(event))
	}

	fmt.Printf("✅ Dataset complete: %d customers, %d products, %d orders, %d items\n",
		len(ds.Customers), len(ds.Products), len(ds.Orders), len(ds.Items))
	return nil
}

func applyGenerateDefaults(defaults *config.GenerateConfig) {
	if genSeed == 0 {
		genSeed = defaults.Seed
	}
	if genCustomers < 0 {
		genCustomers = defaults.Customers
	}
	if genProducts < 0 {
		genProducts = defaults.Products
	}
	if genOrders < 0 {
		genOrders = defaults.Orders
	}
	if genOut == "" {
		genOut = defaults.OutDir
	}
}

func printPreview(ds *gen.Dataset, n int) {
	fmt.Println("\n=== CUSTOMERS (head) ===")
	for _, c := range ds.Customers[:min(n, len(ds.Customers))] {
		fmt.Printf("  %4d  %-25s %-30s %s, %s\n", c.ID, c.Name, c.Email, c.City, c.State)
	}

	fmt.Println("\n=== PRODUCTS (head) ===")
	for _, p := range ds.Products[:min(n, len(ds.Products))] {
		fmt.Printf("  %4d  %-35s %-12s %8.2f\n", p.ID, p.Name, p.Category, p.Price)
	}

	fmt.Println("\n=== ORDERS (head) ===")
	for _, o := range ds.Orders[:min(n, len(ds.Orders))] {
		fmt.Printf("  %4d  customer=%-4d %-10s %-11s %8.2f\n",
			o.ID, o.CustomerID, o.Status, o.PaymentMethod, o.Total)
	}

	fmt.Println("\n=== ORDER ITEMS (head) ===")
	for _, item := range ds.Items[:min(n, len(ds.Items))] {
		fmt.Printf("  %4d  order=%-4d product=%-4d qty=%d %8.2f\n",
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.Total)
	}
}
