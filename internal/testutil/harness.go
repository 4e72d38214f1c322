// Package testutil provides a standardized harness for running the app
// end-to-end in tests against a temporary configuration file.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avrkit/partscope/internal/app"
	"github.com/avrkit/partscope/internal/hcl"
)

// SampleConfig is a small but representative configuration used across
// tests: two base parts plus one derived via parent inheritance.
const SampleConfig = `part "m168" {
  desc      = "ATmega168"
  id        = "m168"
  family_id = "megaAVR"

  memory "flash" {
    size      = 16 * 1024
    paged     = true
    page_size = 128
    num_pages = 128
  }
  memory "eeprom" {
    size = 512
  }
}

part "m328" {
  desc      = "ATmega328"
  id        = "m328"
  family_id = "megaAVR"

  memory "flash" {
    size      = 32 * 1024
    paged     = true
    page_size = 128
    num_pages = 256
  }
  memory "eeprom" {
    size = 1024
  }
}

part "m328p" {
  parent = "m328"
  desc   = "ATmega328P"
  id     = "m328p"
}
`

// WriteConfig writes content as avrdude.conf in a fresh temp directory and
// returns the file's path.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), app.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// HarnessResult holds the outcomes of an end-to-end app run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunApp constructs the app against the given configuration content and
// runs it. Input feeds the interactive shell; parts, when non-empty,
// select one-shot mode instead. Logs are suppressed below error level so
// the captured output is the presentation output alone.
func RunApp(t *testing.T, confContent, input string, parts ...string) *HarnessResult {
	t.Helper()

	confPath := WriteConfig(t, confContent)

	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: confPath,
		PartNames:  parts,
		LogFormat:  "text",
		LogLevel:   "error",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	a, err := app.NewApp(&buf, appConfig, hcl.NewLoader())
	if err != nil {
		return &HarnessResult{Output: buf.String(), Err: err}
	}

	err = a.Run(context.Background(), strings.NewReader(input))
	return &HarnessResult{Output: buf.String(), Err: err, App: a}
}
