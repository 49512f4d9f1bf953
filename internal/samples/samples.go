// Package samples builds representative payloads for every envelope
// family. The CLI uses them to demo decoding without a live backend.
package samples

import (
	"github.com/google/uuid"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/envelope"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/models"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/nested"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/ws"
)

// Projects returns two projects with stable contents but fresh ids.
func Projects() []models.Project {
	return []models.Project{
		{
			ID:        uuid.New().String(),
			Installed: true,
			Scripts: []models.Script{
				{ID: uuid.New().String()},
				{ID: uuid.New().String()},
			},
		},
		{
			ID:        uuid.New().String(),
			Installed: false,
			Scripts: []models.Script{
				{ID: uuid.New().String()},
			},
		},
	}
}

// Scripts flattens the scripts of Projects.
func Scripts() []models.Script {
	var scripts []models.Script
	for _, p := range Projects() {
		scripts = append(scripts, p.Scripts...)
	}
	return scripts
}

// AllProjectsSuccess is a successful flat-generic all-projects response.
func AllProjectsSuccess() envelope.APIResponse[models.AllProjectsData, models.AllProjectsErrorType] {
	data := models.AllProjectsData{Projects: Projects()}
	return envelope.APIResponse[models.AllProjectsData, models.AllProjectsErrorType]{
		Success:      true,
		ResponseType: envelope.AllProjectsResponse,
		Data:         &data,
	}
}

// AllProjectsFailure is a failed flat-generic all-projects response.
func AllProjectsFailure() envelope.APIResponse[models.AllProjectsData, models.AllProjectsErrorType] {
	return envelope.APIResponse[models.AllProjectsData, models.AllProjectsErrorType]{
		Success:      false,
		ResponseType: envelope.AllProjectsResponse,
		Error: &envelope.ResponseError[models.AllProjectsErrorType]{
			ErrorType:    models.CantReadProjects,
			ErrorMessage: "Failed to read projects.",
		},
	}
}

// GeneralFailure is a failed flat-generic response raised before
// endpoint processing.
func GeneralFailure() envelope.APIResponse[struct{}, models.GeneralErrorType] {
	return envelope.APIResponse[struct{}, models.GeneralErrorType]{
		Success:      false,
		ResponseType: envelope.GeneralResponse,
		Error: &envelope.ResponseError[models.GeneralErrorType]{
			ErrorType:    models.APIKeyIsMissing,
			ErrorMessage: "API key is missing.",
		},
	}
}

// NestedAllProjects is a fully processed nested envelope.
func NestedAllProjects() nested.APIResponse {
	return nested.Processed{
		Branch: nested.AllProjects{
			Outcome: nested.AllProjectsProcessed{Projects: Projects()},
		},
	}
}

// NestedAllProjectsFailure is a nested envelope whose all-projects
// branch failed.
func NestedAllProjectsFailure() nested.APIResponse {
	detail := models.Reasonf("We are missing something", "permissions")
	return nested.Processed{
		Branch: nested.AllProjects{
			Outcome: nested.AllProjectsFailed{
				Reason: models.AProjectIsMissing,
				Detail: &detail,
			},
		},
	}
}

// NestedTransportFailure is a nested envelope that failed at the
// transport level.
func NestedTransportFailure() nested.APIResponse {
	detail := models.Reasonf("token was not provided", "permissions")
	return nested.Failed{
		Reason: models.MissingToken,
		Detail: &detail,
	}
}

// SubscribeMessage is a client subscribe control message.
func SubscribeMessage() ws.Message {
	projectID := uuid.New().String()
	return ws.Subscribe{ProjectID: &projectID}
}

// UnsubscribeMessage is a client unsubscribe control message.
func UnsubscribeMessage() ws.Message {
	projectID := uuid.New().String()
	return ws.Unsubscribe{ProjectID: &projectID}
}
