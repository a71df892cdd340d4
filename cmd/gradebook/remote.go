package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/report"
	gbclient "github.com/bigredeye/gradebook/pkg/client/gradebook"
)

func makeRemoteCommand() *cobra.Command {
	var endpoint string

	newClient := func() (*gbclient.Client, error) {
		if endpoint == "" {
			endpoint = book.config.Client.Endpoint
		}
		return gbclient.NewClient(endpoint)
	}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Query a running gradebook server",
	}
	cmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Server endpoint, overrides the config")

	cmd.AddCommand(&cobra.Command{
		Use:   "results STUDENT",
		Short: "Print student results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			results, err := client.LoadResults(args[0])
			if err != nil {
				return err
			}
			for _, result := range results.Courses {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", result.Course, report.FormatGrade(result.Average))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "report STUDENT",
		Short: "Generate the student report on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.GenerateReport(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report: %s\n", reportURL(endpoint, res.HTML))
			return nil
		},
	})

	return cmd
}

func reportURL(endpoint, path string) string {
	return strings.TrimSuffix(endpoint, "/") + "/" + strings.TrimPrefix(path, "/")
}
