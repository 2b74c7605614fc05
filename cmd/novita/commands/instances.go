package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/novitalabs/novita-go/pkg/novita"
)

// NewInstancesCommand creates the instances command group.
func NewInstancesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "instances",
		Aliases: []string{"instance", "inst"},
		Short:   "Manage GPU instances",
		Long:    "List, create, inspect and control GPU instances",
	}

	cmd.AddCommand(newInstancesListCommand())
	cmd.AddCommand(newInstancesGetCommand())
	cmd.AddCommand(newInstancesCreateCommand())
	cmd.AddCommand(newInstancesActionCommand("start", "Start a stopped instance", novita.InstancesClient.Start))
	cmd.AddCommand(newInstancesActionCommand("stop", "Stop a running instance", novita.InstancesClient.Stop))
	cmd.AddCommand(newInstancesActionCommand("restart", "Restart an instance", novita.InstancesClient.Restart))
	cmd.AddCommand(newInstancesActionCommand("delete", "Delete an instance", novita.InstancesClient.Delete))
	cmd.AddCommand(newInstancesSSHCommand())

	return cmd
}

func newInstancesListCommand() *cobra.Command {
	var (
		pageSize int
		pageNum  int
		name     string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstancesListCommand(pageSize, pageNum, name, status)
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")
	cmd.Flags().IntVar(&pageNum, "page", 0, "page number")
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func runInstancesListCommand(pageSize, pageNum int, name, status string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	defer func() { _ = client.Close() }()

	params := &novita.ListInstancesParams{
		PageSize: pageSize,
		PageNum:  pageNum,
		Name:     name,
		Status:   novita.InstanceStatus(status),
	}

	list, err := client.GPU().Instances().List(context.Background(), params)
	if err != nil {
		return fmt.Errorf("failed to list instances: %w", err)
	}

	handled, err := renderStructured(list)
	if handled || err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Product", "GPUs", "Cluster")

	for _, instance := range list.Instances {
		_ = table.Append(instance.ID, orDash(instance.Name), string(instance.Status),
			orDash(instance.ProductName), orDash(instance.GPUNum), orDash(instance.ClusterName))
	}

	_ = table.Render()

	fmt.Printf("\nShowing %d of %d instances.\n", len(list.Instances), list.Total)

	return nil
}

func newInstancesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INSTANCE_ID",
		Short: "Show one instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			instance, err := client.GPU().Instances().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get instance: %w", err)
			}

			handled, err := renderStructured(instance)
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")
			_ = table.Append("ID", instance.ID)
			_ = table.Append("Name", orDash(instance.Name))
			_ = table.Append("Status", string(instance.Status))
			_ = table.Append("Image", orDash(instance.ImageURL))
			_ = table.Append("Product", orDash(instance.ProductName))
			_ = table.Append("Cluster", orDash(instance.ClusterName))
			_ = table.Append("Rootfs (GB)", strconv.Itoa(instance.RootfsSize))
			_ = table.Append("Billing", string(instance.BillingMode))
			_ = table.Render()

			return nil
		},
	}
}

func newInstancesCreateCommand() *cobra.Command {
	var request novita.CreateInstanceRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			created, err := client.GPU().Instances().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create instance: %w", err)
			}

			fmt.Printf("Created instance %s\n", created.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "instance name")
	cmd.Flags().StringVar(&request.ProductID, "product", "", "product ID")
	cmd.Flags().IntVar(&request.GPUNum, "gpus", 1, "number of GPUs")
	cmd.Flags().IntVar(&request.RootfsSize, "rootfs", novita.MinRootfsSizeGB, "root filesystem size in GB")
	cmd.Flags().StringVar(&request.ImageURL, "image", "", "container image URL")
	cmd.Flags().StringVar(&request.ClusterID, "cluster", "", "cluster ID")

	return cmd
}

// newInstancesActionCommand builds the start/stop/restart/delete variants,
// which differ only in the method they invoke.
func newInstancesActionCommand(verb, short string, action func(novita.InstancesClient, context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " INSTANCE_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			err = action(client.GPU().Instances(), context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to %s instance: %w", verb, err)
			}

			fmt.Printf("Instance %s: %s requested\n", args[0], verb)

			return nil
		},
	}
}

func newInstancesSSHCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ssh INSTANCE_ID",
		Short: "Print the SSH command for an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			endpoint, err := client.GPU().Instances().SSHEndpoint(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve SSH endpoint: %w", err)
			}

			fmt.Println(endpoint.Command)

			return nil
		},
	}
}
