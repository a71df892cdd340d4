package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/export"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/pkg/targz"
)

func makeReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report STUDENT",
		Short: "Generate the HTML result page with both charts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := book.generateReport(cmd.OutOrStdout(), args[0])
			return err
		},
	}
}

// Charts depend on the student's results, so both subcommands run the whole
// pipeline and print the requested chart.
func makeChartsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Generate student charts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "bar STUDENT",
		Short: "Generate the per-course results bar chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := book.generateReport(cmd.OutOrStdout(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bar chart: %s\n", artifacts.BarChart)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "pie STUDENT",
		Short: "Generate the course registration pie chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := book.generateReport(cmd.OutOrStdout(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pie chart: %s\n", artifacts.PieChart)
			return nil
		},
	})

	return cmd
}

func makeExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export STUDENT",
		Short: "Export student results to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			student := args[0]
			if output == "" {
				output = filepath.Join(book.config.Reports.Dir, student+".xlsx")
			}
			return exportResults(student, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")

	return cmd
}

func exportResults(student, output string) error {
	results, courses, err := book.generator.Results(student)
	if err != nil {
		return err
	}

	file, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "Failed to create export file")
	}
	if err := export.WriteResults(file, results, courses); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "Failed to write export file")
	}

	log.Info("Exported results", lf.StudentCode(student), lf.Path(output))
	return nil
}

func makeArchiveCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "archive STUDENT",
		Short: "Generate the report and pack it into a tar.gz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			student := args[0]
			if output == "" {
				output = filepath.Join(book.config.Reports.Dir, student+"_report.tar.gz")
			}

			artifacts, err := book.generateReport(cmd.OutOrStdout(), student)
			if err != nil {
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "Failed to create archive")
			}
			if err := targz.Pack(file, artifacts.HTML, artifacts.BarChart, artifacts.PieChart); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return errors.Wrap(err, "Failed to write archive")
			}

			log.Info("Archived report", lf.StudentCode(student), lf.Path(output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")

	return cmd
}
