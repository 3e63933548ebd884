package main

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Usage(t *testing.T) {
	assert.Equal(t, 2, run(nil))
	assert.Equal(t, 2, run([]string{"no-such-command"}))
	assert.Equal(t, 0, run([]string{"--help"}))
}

func TestParseDecimal(t *testing.T) {
	d, err := parseDecimal("amount", "12.50")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(d))

	_, err = parseDecimal("amount", "twelve")
	assert.EqualError(t, err, `--amount: "twelve" is not a number`)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("date", "2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local), d)

	empty, err := parseDate("date", "")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = parseDate("date", "14/03/2025")
	assert.Error(t, err)
}

func TestCommands_HaveSummaries(t *testing.T) {
	for name, cmd := range commands {
		assert.NotEmpty(t, cmd.summary, name)
		assert.NotNil(t, cmd.run, name)
	}
}
