package main

import (
	"strings"
)

// formatSection indents a help text section below its header.
func formatSection(header string, content string) string {
	var out strings.Builder

	if header != "" {
		_, _ = out.WriteString(header + ":\n")
	}

	for _, line := range strings.Split(content, "\n") {
		if line != "" {
			_, _ = out.WriteString("  ")
		}

		_, _ = out.WriteString(line + "\n")
	}

	if header != "" {
		_, _ = out.WriteString("\n")

		return out.String()
	}

	return strings.TrimSuffix(out.String(), "\n")
}
