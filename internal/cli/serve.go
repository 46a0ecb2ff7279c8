// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogama/asynchttp/internal/echoserver"
	"github.com/gogama/asynchttp/internal/logger"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var (
		addr      string
		slowDelay string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the echo server used to exercise the client backends",
		Long: `Run an HTTP server which echoes requests back as JSON.

Routes:
  /test     any method; echoes the JSON body as "received", 201 for POST
  /headers  echoes X-* and Another-* request headers
  /echo     echoes the JSON body as "received"
  /slow     answers after --slow-delay`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load(cmd, map[string]string{
				"server.addr":       "addr",
				"server.slow_delay": "slow-delay",
			})
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log, cmd.OutOrStdout(), cmd.ErrOrStderr())
			fmt.Fprintf(cmd.ErrOrStderr(), "%s echo server on %s (slow delay %s)\n",
				color.GreenString("Serving"), cfg.Server.Addr, cfg.Server.SlowDelay)
			if err = echoserver.Run(cmd.Context(), cfg.Server, log); err != nil {
				return exit(ExitFailure, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address (env: ASYNCHTTP_SERVER_ADDR)")
	cmd.Flags().StringVar(&slowDelay, "slow-delay", "2s", "Delay before /slow answers (env: ASYNCHTTP_SERVER_SLOW_DELAY)")
	return cmd
}
