package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/web"
)

func makeServeCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve results and generated reports over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen != "" {
				book.config.Server.ListenAddress = listen
			}
			s := web.NewServer(book.config, log, book.students, book.courses, book.generator)
			return errors.Wrap(s.Run(), "Server failed")
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address, overrides the config")

	return cmd
}
