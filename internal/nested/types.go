// Package nested models the nested-variant envelope family: a tree of
// processed/failed branches with recursively nested sub-envelopes.
//
// On the wire each level is an object with mutually-exclusive optional
// keys ("processed"/"failed", then one named sub-envelope, then one
// failure reason). Internally that convention is remodeled as explicit
// sum types; the Decode adapter is the single place where "which key is
// set" ambiguity is resolved, using declaration-order precedence.
package nested

import "github.com/JadKHaddad/PTaaS-Reimagined/internal/models"

// APIResponse is the top level of the nested envelope: either Processed
// or Failed. Constructed once by Decode, immutable afterward.
type APIResponse interface {
	isAPIResponse()
}

// Processed wraps the single populated sub-envelope of a successful
// transport round trip. The branch itself may still be a failure.
type Processed struct {
	Branch Branch
}

func (Processed) isAPIResponse() {}

// Failed is a transport-level failure that occurred before any
// endpoint processing.
type Failed struct {
	Reason models.TransportFailureType
	Detail *models.APIError
}

func (Failed) isAPIResponse() {}

// Branch is one of the named sub-envelopes inside a processed response.
type Branch interface {
	isBranch()
}

// AllProjects is the sub-envelope answering an all-projects request.
type AllProjects struct {
	Outcome AllProjectsOutcome
}

func (AllProjects) isBranch() {}

// AllScripts is the sub-envelope answering an all-scripts request.
type AllScripts struct {
	Outcome AllScriptsOutcome
}

func (AllScripts) isBranch() {}

// AllProjectsOutcome is the processed/failed split of the all-projects
// sub-envelope.
type AllProjectsOutcome interface {
	isAllProjectsOutcome()
}

// AllProjectsProcessed carries the project listing.
type AllProjectsProcessed struct {
	Projects []models.Project
}

func (AllProjectsProcessed) isAllProjectsOutcome() {}

// AllProjectsFailed is a leaf failure of the all-projects sub-envelope.
type AllProjectsFailed struct {
	Reason models.AllProjectsErrorType
	Detail *models.APIError
}

func (AllProjectsFailed) isAllProjectsOutcome() {}

// AllScriptsOutcome is the processed/failed split of the all-scripts
// sub-envelope.
type AllScriptsOutcome interface {
	isAllScriptsOutcome()
}

// AllScriptsProcessed carries the script listing.
type AllScriptsProcessed struct {
	Scripts []models.Script
}

func (AllScriptsProcessed) isAllScriptsOutcome() {}

// AllScriptsFailed is a leaf failure of the all-scripts sub-envelope.
type AllScriptsFailed struct {
	Reason models.AllScriptsErrorType
	Detail *models.APIError
}

func (AllScriptsFailed) isAllScriptsOutcome() {}
