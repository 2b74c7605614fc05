package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List purchasable instance types",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsListCPUCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List GPU products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			products, err := client.GPU().Products().ListGPU(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			handled, err := renderStructured(products)
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "CPU/GPU", "$/hr", "Spot $/hr", "Regions")

			for idx := range products {
				product := &products[idx]
				_ = table.Append(product.ID, product.Name,
					strconv.Itoa(product.CPUPerGPU),
					fmt.Sprintf("%.4f", product.PriceUSD()),
					fmt.Sprintf("%.4f", product.SpotPriceUSD()),
					strings.Join(product.Regions, ","))
			}

			_ = table.Render()

			return nil
		},
	}
}

func newProductsListCPUCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-cpu",
		Short: "List CPU products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			products, err := client.GPU().Products().ListCPU(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list cpu products: %w", err)
			}

			handled, err := renderStructured(products)
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "vCPU", "Memory (GB)", "$/hr")

			for idx := range products {
				product := &products[idx]
				_ = table.Append(product.ID, product.Name,
					strconv.Itoa(product.CPUNum),
					strconv.Itoa(product.Memory),
					fmt.Sprintf("%.4f", product.PriceUSD()))
			}

			_ = table.Render()

			return nil
		},
	}
}
