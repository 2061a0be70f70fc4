/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/blueprint/internal/logger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		_ = logger.SetLevel("info")
	})

	require.NoError(t, logger.SetLevel("info"))
	logger.Debug("hidden %d", 1)
	logger.Info("shown %d", 2)
	logger.Warn("careful %s", "now")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "careful now")

	buf.Reset()
	require.NoError(t, logger.SetLevel("debug"))
	logger.Debug("visible %d", 3)
	assert.Contains(t, buf.String(), "visible 3")
}

func TestSetLevel_Invalid(t *testing.T) {
	assert.Error(t, logger.SetLevel("loud"))
}
