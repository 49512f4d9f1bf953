package nested

import "github.com/JadKHaddad/PTaaS-Reimagined/internal/models"

// Resolution is the terminal state of a depth-first walk over a decoded
// envelope: the populated branch path plus either a success payload or
// a failure reason with its optional detail.
type Resolution struct {
	// Path lists the populated branch keys from the root down, using
	// wire labels, e.g. ["processed", "allProjects", "failed"].
	Path []string
	// Payload holds the success payload when the walk ended in a
	// processed leaf: models.AllProjectsData or models.AllScriptsData.
	Payload any
	// Failure is the wire label of the failure reason when the walk
	// ended in a failed leaf.
	Failure string
	// Detail is the failure detail, when one was attached.
	Detail *models.APIError
}

// Failed reports whether the walk ended in a failure leaf.
func (r Resolution) Failed() bool {
	return r.Failure != ""
}

// Resolve walks a decoded envelope to its terminal state. The decoded
// sum holds exactly one variant per level, so resolution is
// deterministic by construction; the populated-key ambiguity of the
// wire format was already settled by Decode.
func Resolve(resp APIResponse) Resolution {
	switch v := resp.(type) {
	case Processed:
		return resolveBranch(v.Branch)
	case Failed:
		return Resolution{
			Path:    []string{keyFailed},
			Failure: models.TransportFailures.LabelOf(v.Reason),
			Detail:  v.Detail,
		}
	default:
		return Resolution{}
	}
}

func resolveBranch(branch Branch) Resolution {
	switch v := branch.(type) {
	case AllProjects:
		switch o := v.Outcome.(type) {
		case AllProjectsProcessed:
			return Resolution{
				Path:    []string{keyProcessed, keyAllProjects, keyProcessed},
				Payload: models.AllProjectsData{Projects: o.Projects},
			}
		case AllProjectsFailed:
			return Resolution{
				Path:    []string{keyProcessed, keyAllProjects, keyFailed},
				Failure: models.AllProjectsErrors.LabelOf(o.Reason),
				Detail:  o.Detail,
			}
		}
	case AllScripts:
		switch o := v.Outcome.(type) {
		case AllScriptsProcessed:
			return Resolution{
				Path:    []string{keyProcessed, keyAllScripts, keyProcessed},
				Payload: models.AllScriptsData{Scripts: o.Scripts},
			}
		case AllScriptsFailed:
			return Resolution{
				Path:    []string{keyProcessed, keyAllScripts, keyFailed},
				Failure: models.AllScriptsErrors.LabelOf(o.Reason),
				Detail:  o.Detail,
			}
		}
	}
	return Resolution{}
}
