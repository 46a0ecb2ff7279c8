// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/gogama/asynchttp"
	"github.com/gogama/asynchttp/internal/logger"
	"github.com/gogama/asynchttp/metrics"
	"github.com/gogama/asynchttp/request"
)

var verbs = request.Methods()

type requestFlags struct {
	headers []string
	data    string
	query   string
	include bool
	fail    bool
}

func newRequestCmd(g *globalFlags, m request.Method) *cobra.Command {
	f := &requestFlags{}
	name := strings.ToLower(m.String())
	cmd := &cobra.Command{
		Use:   name + " <uri>",
		Short: "Send a " + m.String() + " request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, g, f, m, args[0])
		},
	}
	cmd.Flags().StringArrayVarP(&f.headers, "header", "H", nil, `Request header line "Name: Value" (repeatable)`)
	if m.HasBody() {
		cmd.Flags().StringVarP(&f.data, "data", "d", "", "Request body, @file to read a file, or - for stdin")
	}
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Print only the part of a JSON body matching this gjson path")
	cmd.Flags().BoolVarP(&f.include, "include", "i", false, "Print response headers in text output")
	cmd.Flags().BoolVarP(&f.fail, "fail", "f", false, "Exit with status 1 on a 4XX or 5XX response")
	return cmd
}

func runRequest(cmd *cobra.Command, g *globalFlags, f *requestFlags, m request.Method, uri string) error {
	cfg, err := g.load(cmd, nil)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log, cmd.OutOrStdout(), cmd.ErrOrStderr())

	body, err := readBody(f.data, cmd.InOrStdin())
	if err != nil {
		return exit(ExitUsageError, err)
	}

	reg := prometheus.NewRegistry()
	hg := &asynchttp.HandlerGroup{}
	metrics.New(reg).Install(hg)

	cl, err := asynchttp.NewFromConfig(cfg.Client(), asynchttp.WithLogger(log), asynchttp.WithHandlers(hg))
	if err != nil {
		return exit(ExitConfigError, err)
	}

	ctx := cmd.Context()
	start := time.Now()
	resp, err := asynchttp.Do(cl, m, uri, body, f.headers...).WaitContext(ctx)
	elapsed := time.Since(start)
	if ctx.Err() != nil {
		// The abandoned request is still in flight; Close would block.
		return exit(ExitFailure, ctx.Err())
	}
	if cerr := cl.Close(); cerr != nil {
		log.Warn().Err(cerr).Msg("failed to close client")
	}

	if g.metricsFile != "" {
		if merr := prometheus.WriteToTextfile(g.metricsFile, reg); merr != nil {
			log.Warn().Err(merr).Str("file", g.metricsFile).Msg("failed to write metrics")
		}
	}

	if err != nil {
		return exit(exitCodeOf(err), err)
	}

	r := &rendering{
		format:  cfg.Output,
		query:   f.query,
		include: f.include,
		backend: cl.Backend(),
		elapsed: elapsed,
	}
	if err = r.render(cmd.OutOrStdout(), cmd.ErrOrStderr(), resp); err != nil {
		return exit(ExitFailure, err)
	}
	if f.fail && resp.StatusCode >= 400 {
		return exit(ExitHTTPError, nil)
	}
	return nil
}

// readBody resolves the --data flag: literal text, @file, or - for
// stdin.
func readBody(data string, stdin io.Reader) ([]byte, error) {
	switch {
	case data == "":
		return nil, nil
	case data == "-":
		return request.BodyBytes(stdin)
	case strings.HasPrefix(data, "@"):
		file, err := os.Open(data[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to open body file: %w", err)
		}
		return request.BodyBytes(file)
	default:
		return request.BodyBytes(data)
	}
}
