package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewClustersCommand creates the clusters command group.
func NewClustersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "List datacenter clusters",
	}

	cmd.AddCommand(newClustersListCommand())

	return cmd
}

func newClustersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			clusters, err := client.GPU().Clusters().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list clusters: %w", err)
			}

			handled, err := renderStructured(clusters)
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "GPU Types", "Network Storage")

			for idx := range clusters {
				cluster := &clusters[idx]

				networkStorage := "no"
				if cluster.SupportNetwork {
					networkStorage = "yes"
				}

				_ = table.Append(cluster.ID, orDash(cluster.Name),
					strings.Join(cluster.AvailableGPUType, ","), networkStorage)
			}

			_ = table.Render()

			return nil
		},
	}
}
