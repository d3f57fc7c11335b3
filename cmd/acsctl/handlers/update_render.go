package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/acsctl/internal/config"
	"github.com/imamik/acsctl/internal/containerstorage"
	"github.com/imamik/acsctl/internal/util/ptr"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	okStyle      = lipgloss.NewStyle().Foreground(colorGreen)
)

const defaultValue = "(default)"

// summaryRow is a single label/value line of the update summary.
type summaryRow struct {
	Label string
	Value string
}

// operationName describes what the validated request will do.
func operationName(p containerstorage.Params) string {
	if p.Disable {
		return "disable"
	}
	return "enable"
}

// summaryRows lists the settings of an accepted request in display order.
func summaryRows(state *config.ClusterState, p containerstorage.Params) []summaryRow {
	rows := []summaryRow{
		{"Cluster", state.ClusterName},
		{"Operation", operationName(p)},
	}
	if p.Disable {
		return rows
	}

	sku := defaultValue
	if p.PoolSKU != nil {
		sku = string(*p.PoolSKU)
	}
	option := defaultValue
	if p.PoolOption != nil {
		option = string(*p.PoolOption)
	}

	size := ptr.Deref(p.PoolSize, defaultValue)
	if p.PoolSize != nil && p.PoolType == containerstorage.PoolTypeEphemeralDisk {
		size += " (ignored)"
	}

	return append(rows,
		summaryRow{"Pool name", ptr.Deref(p.PoolName, defaultValue)},
		summaryRow{"Pool type", string(p.PoolType)},
		summaryRow{"Pool SKU", sku},
		summaryRow{"Pool option", option},
		summaryRow{"Pool size", size},
		summaryRow{"Node pools", ptr.Deref(p.NodePools, defaultValue)},
	)
}

// renderUpdateSummary produces a lipgloss-styled summary of an accepted request.
func renderUpdateSummary(state *config.ClusterState, p containerstorage.Params) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  acsctl: %s Azure Container Storage", operationName(p))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Request"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 40)))
	b.WriteString("\n")
	for _, row := range summaryRows(state, p) {
		fmt.Fprintf(&b, "    %-12s %s\n", row.Label+":", row.Value)
	}

	b.WriteString("\n")
	b.WriteString(okStyle.Render("  ✓ Arguments are valid"))
	b.WriteString("\n")

	return b.String()
}

// updateSummaryLine returns a compact one-line summary for non-interactive output.
func updateSummaryLine(state *config.ClusterState, p containerstorage.Params) string {
	rows := summaryRows(state, p)
	parts := make([]string, 0, len(rows))
	for _, row := range rows[2:] {
		parts = append(parts, fmt.Sprintf("%s=%s", strings.ToLower(strings.ReplaceAll(row.Label, " ", "-")), row.Value))
	}

	line := fmt.Sprintf("arguments valid: %s Azure Container Storage on %s", operationName(p), state.ClusterName)
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, ", ") + ")"
	}
	return line
}
