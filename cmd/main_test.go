//go:build unit

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWindowCmd(t *testing.T) {
	t.Setenv("CALENDAR_TIMEZONE", "UTC")
	t.Setenv("CALENDAR_HORIZON_MONTHS", "12")
	t.Setenv("CALENDAR_LABEL_OFFSET_MONTHS", "1")

	t.Run("prints the window as of the given date", func(t *testing.T) {
		out, err := runCmd(t, "window", "--at", "2026-03-15")
		require.NoError(t, err)
		assert.Contains(t, out, "today:           2026-03-15")
		assert.Contains(t, out, "current month:   2026-03")
		assert.Contains(t, out, "navigable until: 2027-03-01 (12 months)")
		assert.Contains(t, out, "bookable until:  2027-02-28 (February 2027)")
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := runCmd(t, "window", "--at", "15/03/2026")
		assert.Error(t, err)
	})

	t.Run("rejects an unknown time zone", func(t *testing.T) {
		t.Setenv("CALENDAR_TIMEZONE", "Mars/Olympus")
		_, err := runCmd(t, "window")
		assert.Error(t, err)
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hoster-calendar dev (commit=none, built=unknown)\n", out)
}
