// Package ui provides terminal UI components for tortest command output.
//
// Tables are rendered with lipgloss styling: bold headers, two-space
// column gaps, widths computed from the content. Color degrades through
// the output package's color profile, so piped output stays plain text.
package ui
