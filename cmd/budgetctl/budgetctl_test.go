package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgeteur/backend/config"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

func withConfig(t *testing.T) {
	t.Helper()
	prev := cfg
	cfg = &config.Config{
		Transactions: config.TransactionsConfig{DefaultRange: "month", DefaultInterval: "week"},
	}
	t.Cleanup(func() { cfg = prev })
}

func TestParseViewInput(t *testing.T) {
	withConfig(t)

	t.Run("defaults from config", func(t *testing.T) {
		input, err := parseViewInput("", "", "")
		require.NoError(t, err)
		assert.Equal(t, valueobject.RangeMonth, input.Range)
		assert.Equal(t, valueobject.IntervalWeek, input.Interval)
		assert.Nil(t, input.Anchor)
	})

	t.Run("explicit values", func(t *testing.T) {
		input, err := parseViewInput("Half-Year", "month", "2024-03-31")
		require.NoError(t, err)
		assert.Equal(t, valueobject.RangeHalfYear, input.Range)
		assert.Equal(t, valueobject.IntervalMonth, input.Interval)
		require.NotNil(t, input.Anchor)
		assert.Equal(t, valueobject.NewDate(2024, 3, 31), *input.Anchor)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := parseViewInput("decade", "", "")
		assert.Error(t, err)

		_, err = parseViewInput("", "day", "")
		assert.Error(t, err)

		_, err = parseViewInput("", "", "31/03/2024")
		assert.ErrorContains(t, err, "expected YYYY-MM-DD")
	})
}

func TestRangesCmd(t *testing.T) {
	withConfig(t)

	var out bytes.Buffer
	cmd := rangesCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--interval", "quarter"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)

	rows := map[string]string{}
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		rows[fields[0]] = strings.Join(fields[1:], " ")
	}
	assert.Contains(t, rows["week"], "too small for Quarter")
	assert.Contains(t, rows["month"], "too small for Quarter")
	assert.Equal(t, "available", rows["quarter"])
	assert.Equal(t, "available", rows["year"])
}

func TestRangesCmd_InvalidInterval(t *testing.T) {
	withConfig(t)

	cmd := rangesCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--interval", "day"})
	assert.Error(t, cmd.Execute())
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "-1200.46", formatMoney(decimal.RequireFromString("-1200.456")))
	assert.Equal(t, "0.00", formatMoney(decimal.Zero))
}
