// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package nethttp

import (
	"net/http"
	"time"
)

// handle is the backend's single reusable engine handle.
type handle struct {
	client    *http.Client
	transport *http.Transport
}

func newHandle() handle {
	t := http.DefaultTransport.(*http.Transport).Clone()
	return handle{
		client:    &http.Client{Transport: t},
		transport: t,
	}
}

// reset returns the handle to a clean state for the next request, and
// sets its timeout. Pooled connections survive a reset.
func (h *handle) reset(timeout time.Duration) {
	*h.client = http.Client{
		Transport: h.transport,
		Timeout:   timeout,
	}
}
