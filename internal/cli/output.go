// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/gogama/asynchttp"
)

type rendering struct {
	format  string
	query   string
	include bool
	backend string
	elapsed time.Duration
}

type result struct {
	Status  int      `json:"status" yaml:"status"`
	Headers []string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body    any      `json:"body" yaml:"body"`
}

func (r *rendering) render(stdout, stderr io.Writer, resp *asynchttp.Response) error {
	body := resp.Body
	var selected *gjson.Result
	if r.query != "" {
		res := gjson.GetBytes(body, r.query)
		if !res.Exists() {
			return fmt.Errorf("query %q matched nothing in response body", r.query)
		}
		selected = &res
	}

	switch r.format {
	case "json":
		out := result{Status: resp.StatusCode, Headers: resp.Headers, Body: jsonBody(body, selected)}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		out := result{Status: resp.StatusCode, Headers: resp.Headers, Body: yamlBody(body, selected)}
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		r.statusLine(stderr, resp)
		if r.include {
			for _, h := range resp.Headers {
				fmt.Fprintln(stderr, h)
			}
		}
		text := string(body)
		if selected != nil {
			text = selected.String()
		}
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintln(stdout, text)
		return err
	}
}

func (r *rendering) statusLine(w io.Writer, resp *asynchttp.Response) {
	status := fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	switch {
	case resp.StatusCode >= 500:
		status = color.RedString(status)
	case resp.StatusCode >= 400:
		status = color.YellowString(status)
	default:
		status = color.GreenString(status)
	}
	fmt.Fprintf(w, "%s %s\n", status,
		color.New(color.Faint).Sprintf("(%s, %s)", r.elapsed.Round(time.Millisecond), r.backend))
}

func jsonBody(body []byte, selected *gjson.Result) any {
	if selected != nil {
		return json.RawMessage(selected.Raw)
	}
	if gjson.ValidBytes(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

func yamlBody(body []byte, selected *gjson.Result) any {
	if selected != nil {
		return selected.Value()
	}
	if gjson.ValidBytes(body) {
		return gjson.ParseBytes(body).Value()
	}
	return string(body)
}
