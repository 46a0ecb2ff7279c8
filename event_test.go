// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package asynchttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	assert.Len(t, Events(), numEvents)
	events := Events()
	assert.Equal(t, BeforeExecution, events[BeforeExecution])
	assert.Equal(t, AfterResponse, events[AfterResponse])
	assert.Equal(t, AfterFailure, events[AfterFailure])
	assert.Equal(t, AfterExecution, events[AfterExecution])
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "BeforeExecution", BeforeExecution.Name())
	assert.Equal(t, "AfterResponse", AfterResponse.Name())
	assert.Equal(t, "AfterFailure", AfterFailure.Name())
	assert.Equal(t, "AfterExecution", AfterExecution.String())
}
