// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"fmt"
	"io"
)

// MaxBodySize is the most BodyBytes reads from a reader.
const MaxBodySize = 64 << 20

var (
	// ErrBodyType is returned by BodyBytes for unsupported body types.
	ErrBodyType = errors.New("asynchttp/request: body must be nil, string, []byte or io.Reader")
	// ErrBodyTooLarge is returned by BodyBytes when a reader yields
	// more than MaxBodySize bytes.
	ErrBodyTooLarge = fmt.Errorf("asynchttp/request: body exceeds %d bytes", MaxBodySize)
)

// BodyBytes converts a body given as nil, a string, a []byte or an
// io.Reader into the byte slice a Plan carries. A []byte is returned
// as is, without copying.
//
// A reader is read to EOF and, if it is also an io.Closer, closed.
// A read error takes precedence over a close error.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.Reader:
		b, err := readAll(x)
		if c, ok := x.(io.Closer); ok {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w (got %T)", ErrBodyType, body)
	}
}

func readAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, MaxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	return b, nil
}
