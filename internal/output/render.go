package output

import (
	"fmt"
	"strings"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/models"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/nested"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/ws"
)

// PrintResolution prints the terminal state of a resolved nested
// envelope: the populated branch path, then the payload table or the
// failure reason with its detail.
func PrintResolution(res nested.Resolution) {
	fmt.Printf("Path: %s\n", strings.Join(res.Path, " → "))

	if res.Failed() {
		fmt.Printf("Failure: %s\n", res.Failure)
		if res.Detail != nil {
			fmt.Printf("Message: %s\n", res.Detail.Message)
			if res.Detail.Reason != nil {
				fmt.Printf("Reason: %s\n", *res.Detail.Reason)
			}
		}
		return
	}

	switch payload := res.Payload.(type) {
	case models.AllProjectsData:
		PrintProjectsTable(payload.Projects)
	case models.AllScriptsData:
		PrintScriptsTable(payload.Scripts)
	default:
		fmt.Printf("Payload: %v\n", res.Payload)
	}
}

// PrintWSMessage prints a decoded client control message.
func PrintWSMessage(msg ws.Message) {
	switch v := msg.(type) {
	case ws.Subscribe:
		fmt.Printf("Subscribe: project_id=%s\n", formatProjectID(v.ProjectID))
	case ws.Unsubscribe:
		fmt.Printf("Unsubscribe: project_id=%s\n", formatProjectID(v.ProjectID))
	case ws.Unrecognized:
		fmt.Println("Unrecognized message: no known key present")
	}
}

func formatProjectID(id *string) string {
	if id == nil {
		return "-"
	}
	return *id
}
