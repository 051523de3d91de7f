// Copyright 2025 The Rivaas Authors
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

//go:build !integration

package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/logmask/config"
	"rivaas.dev/logmask/config/codec"
)

func loadYAML(t *testing.T, content string) config.Properties {
	t.Helper()

	src, err := config.ContentSource([]byte(content), codec.TypeYAML)
	require.NoError(t, err)
	props, err := config.Load(context.Background(), src)
	require.NoError(t, err)
	return props
}

func TestWriter_StructuredMaskRulesFromYAML(t *testing.T) {
	t.Parallel()

	props := loadYAML(t, `
stream: err@INFO
mask:
  - pattern: 'password=(\S+)'
    mode: full
  - pattern: '\b(\d{16})\b'
    mode: partial-keep-suffix
    keep: 4
`)

	th := NewTestHelper(t, props)
	th.Write(t, LevelInfo, "full backup done password=hunter2")
	th.Write(t, LevelWarn, "card 4111111111111111 declined")

	assert.Equal(t, []string{
		"INFO: full backup done password=****",
		"WARN: card ************1111 declined",
	}, th.StderrLines())
	assert.Zero(t, th.Diagnostics.Len())
	assert.Equal(t, 2, th.Writer.Engine().Len())
}

func TestWriter_RuleStringsFromYAML(t *testing.T) {
	t.Parallel()

	props := loadYAML(t, `
mask:
  - 'token=(\S+)->full([token])'
  - 'hunter2->literal'
`)

	th := NewTestHelper(t, props)
	th.Write(t, LevelInfo, "token=abc pw hunter2")

	assert.Equal(t, []string{"INFO: token=[token] pw ****"}, th.StdoutLines())
	assert.Zero(t, th.Diagnostics.Len())
}

func TestWriter_MalformedStructuredRuleIsDiagnosed(t *testing.T) {
	t.Parallel()

	props := loadYAML(t, `
mask:
  - pattern: 'pin=(\d+)'
    mode: sideways
  - pattern: 'pw=(\S+)'
`)

	th := NewTestHelper(t, props)
	th.Write(t, LevelInfo, "pin=1234 pw=x")

	assert.Equal(t, []string{"INFO: pin=1234 pw=****"}, th.StdoutLines())
	require.Equal(t, 1, th.Diagnostics.Len())
	assert.Contains(t, th.Diagnostics.Entries()[0].Message, "mask.0")
}
