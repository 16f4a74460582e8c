// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	paramlock "github.com/blinklabs-io/paramlock"
	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/ledger/ledgermock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusClient(t *testing.T) (*paramlock.Client, *ledgermock.Ledger) {
	t.Helper()
	mock := ledgermock.New()
	client, err := paramlock.NewClient(
		context.Background(),
		paramlock.WithGateway(mock),
		paramlock.WithPrometheusRegistry(prometheus.NewRegistry()),
	)
	require.NoError(t, err)
	return client, mock
}

func TestStatusRendersAllFunctions(t *testing.T) {
	client, mock := newStatusClient(t)
	mock.SetTimelock(govfunc.IncreaseAbsoluteCap, 86400)

	var out bytes.Buffer
	err := statusRun(context.Background(), &out, client)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// Header plus one row per governed function
	require.Len(t, lines, 1+len(govfunc.Funcs()))
	assert.Contains(t, lines[0], "FUNCTION")
	assert.Contains(t, out.String(), "increaseAbsoluteCap")
	assert.Contains(t, out.String(), "24h0m0s")
}

func TestStatusFlushesPartialOutputOnError(t *testing.T) {
	client, mock := newStatusClient(t)
	mock.FailNext(errors.New("connection refused"))

	var out bytes.Buffer
	err := statusRun(context.Background(), &out, client)
	require.Error(t, err)
	// Rows rendered before the failure still reach the writer
	assert.Contains(t, out.String(), "FUNCTION")
	assert.Contains(t, out.String(), "TIMELOCK")
}

func TestParseOpRendersCalldata(t *testing.T) {
	f, op, err := parseOp(
		"increaseTimelock",
		[]string{"setMaxRate", "3600"},
	)
	require.NoError(t, err)
	assert.Equal(t, govfunc.IncreaseTimelock, f)

	selWord, err := parseArgWord("bytes4", "setMaxRate")
	require.NoError(t, err)
	rateWord, err := parseArgWord("uint256", "3600")
	require.NoError(t, err)
	want, err := govfunc.IncreaseTimelock.EncodeOp(selWord, rateWord)
	require.NoError(t, err)
	assert.True(t, op.Equal(want))
}

func TestParseOpRejectsBadArity(t *testing.T) {
	_, _, err := parseOp("increaseTimelock", []string{"setMaxRate"})
	require.Error(t, err)
}
