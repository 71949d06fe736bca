package ui

import (
	"strings"

	"tortest/internal/ui/styles"
)

// RenderTable renders headers and rows as an aligned text table with a
// styled header line. Column widths fit the widest cell; columns are
// separated by two spaces.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder

	for i, h := range headers {
		sb.WriteString(styles.Header.Render(pad(h, widths[i], i == len(headers)-1)))
		if i < len(headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			sb.WriteString(pad(cell, widths[i], i == len(row)-1))
			if i < len(row)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// pad right-pads s to width, except for the last column which stays
// unpadded to avoid trailing whitespace.
func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
