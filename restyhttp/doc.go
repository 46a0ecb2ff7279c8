// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package restyhttp implements an asynchttp backend over go-resty, using
a fresh client handle bound to the target host for every request.

Because no engine state is shared between requests, the asynchttp
client only needs its lock to read the configured timeout, and requests
made through this backend may overlap on the network: its Discipline
is asynchttp.Overlapped.

Compared with package nethttp, this backend:

• resolves the target URI into a host and a path before dialing, and
rejects URIs which do not have the shape (scheme "://")? authority
(path)? as Invalid;

• silently drops header lines which contain no colon;

• sends Content-Type: application/json on PUT, POST and PATCH
requests unless the caller specified a Content-Type; and

• populates Response.Headers with every response header.

Response header lines are ordered by canonical header name, with the
values of a repeated header kept in the order received. Go's
http.Header does not record the order of distinct headers on the
wire, so callers must not rely on it.
*/
package restyhttp
