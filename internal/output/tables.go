package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/models"
)

// PrintProjectsTable prints projects in a table format
func PrintProjectsTable(projects []models.Project) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Installed", "Scripts")

	for _, p := range projects {
		installed := ""
		if p.Installed {
			installed = "✓"
		}

		table.Append(
			truncate(p.ID, 36),
			installed,
			formatScriptIDs(p.Scripts),
		)
	}

	table.Render()
}

// PrintScriptsTable prints scripts in a table format
func PrintScriptsTable(scripts []models.Script) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("#", "ID")

	for i, s := range scripts {
		table.Append(
			fmt.Sprintf("%d", i+1),
			truncate(s.ID, 36),
		)
	}

	table.Render()
}

// Helper functions

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func formatScriptIDs(scripts []models.Script) string {
	if len(scripts) == 0 {
		return "-"
	}
	ids := make([]string, 0, len(scripts))
	for _, s := range scripts {
		ids = append(ids, truncate(s.ID, 12))
	}
	return strings.Join(ids, ", ")
}
