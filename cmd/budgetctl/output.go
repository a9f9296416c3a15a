package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/budgeteur/backend/internal/domain/valueobject"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	savingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	onTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
)

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func trendStyle(state valueobject.TrendState) lipgloss.Style {
	switch state {
	case valueobject.TrendOverspending:
		return overStyle
	case valueobject.TrendSaving:
		return savingStyle
	case valueobject.TrendOnTrack:
		return onTrackStyle
	default:
		return mutedStyle
	}
}

func writeTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func writeHeader(w io.Writer, columns ...string) {
	rendered := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		rendered[i] = headerStyle.Render(c)
		rules[i] = strings.Repeat("-", max(len(c), 4))
	}
	fmt.Fprintln(w, strings.Join(rendered, "\t"))
	fmt.Fprintln(w, strings.Join(rules, "\t"))
}
