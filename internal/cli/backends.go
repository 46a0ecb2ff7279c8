// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogama/asynchttp"
)

type backendInfo struct {
	Name                  string `json:"name" yaml:"name"`
	Discipline            string `json:"discipline" yaml:"discipline"`
	ResponseHeaders       bool   `json:"response_headers" yaml:"response_headers"`
	ImplicitJSON          bool   `json:"implicit_json" yaml:"implicit_json"`
	DropsMalformedHeaders bool   `json:"drops_malformed_headers" yaml:"drops_malformed_headers"`
}

func newBackendsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available client backends and how they differ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load(cmd, nil)
			if err != nil {
				return err
			}
			infos, err := describeBackends()
			if err != nil {
				return exit(ExitFailure, err)
			}

			out := cmd.OutOrStdout()
			switch cfg.Output {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			case "yaml":
				enc := yaml.NewEncoder(out)
				if err = enc.Encode(infos); err != nil {
					return err
				}
				return enc.Close()
			default:
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tDISCIPLINE\tRESPONSE HEADERS\tIMPLICIT JSON\tDROPS MALFORMED HEADERS")
				for _, info := range infos {
					fmt.Fprintf(tw, "%s\t%s\t%t\t%t\t%t\n", info.Name, info.Discipline,
						info.ResponseHeaders, info.ImplicitJSON, info.DropsMalformedHeaders)
				}
				return tw.Flush()
			}
		},
	}
}

func describeBackends() ([]backendInfo, error) {
	names := asynchttp.Backends()
	infos := make([]backendInfo, 0, len(names))
	for _, name := range names {
		cl, err := asynchttp.New(name)
		if err != nil {
			return nil, err
		}
		caps := cl.Capabilities()
		infos = append(infos, backendInfo{
			Name:                  cl.Backend(),
			Discipline:            cl.Discipline().String(),
			ResponseHeaders:       caps.ResponseHeaders,
			ImplicitJSON:          caps.ImplicitJSON,
			DropsMalformedHeaders: caps.DropsMalformedHeaders,
		})
		if err = cl.Close(); err != nil {
			return nil, err
		}
	}
	return infos, nil
}
