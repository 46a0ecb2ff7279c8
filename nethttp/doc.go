// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package nethttp implements an asynchttp backend over the Go standard
net/http engine, using a single reusable client handle.

The handle (one http.Client and its http.Transport) is reset and
reused for every request, so the backend requires the asynchttp client
to serialize all requests: its Discipline is asynchttp.Serialized.

The backend passes the caller's full URI to the engine unchanged, sends
exactly the headers the caller specified (no implicit Content-Type),
and does not populate response headers: a Response from this backend
carries a status code and body only.
*/
package nethttp
