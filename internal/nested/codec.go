package nested

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/models"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/wire"
)

// Wire keys. The caller already knows the expected shape from request
// context, so the root carries no explicit type tag; which key is set
// decides the variant.
const (
	keyProcessed   = "processed"
	keyFailed      = "failed"
	keyAllProjects = "allProjects"
	keyAllScripts  = "allScripts"
)

type projectsPayload struct {
	Projects []models.Project `json:"projects"`
}

type scriptsPayload struct {
	Scripts []models.Script `json:"scripts"`
}

// Decode resolves a nested-variant envelope depth-first. At every level
// where the wire format permits several keys to be populated at once,
// the first key in declaration order wins: processed before failed,
// allProjects before allScripts, failure reasons in their table order.
// A level with no populated key at all is an EmptyEnvelopeError.
func Decode(raw []byte) (APIResponse, error) {
	fields, err := wire.DecodeObject(raw)
	if err != nil {
		return nil, err
	}

	if processedRaw := fields[keyProcessed]; !wire.IsNull(processedRaw) {
		branch, err := decodeBranch(processedRaw)
		if err != nil {
			return nil, err
		}
		return Processed{Branch: branch}, nil
	}

	if failedRaw := fields[keyFailed]; !wire.IsNull(failedRaw) {
		reason, detail, err := decodeFailure(failedRaw, models.TransportFailures, "failed")
		if err != nil {
			return nil, err
		}
		return Failed{Reason: reason, Detail: detail}, nil
	}

	return nil, &wire.EmptyEnvelopeError{Context: "APIResponse"}
}

func decodeBranch(raw json.RawMessage) (Branch, error) {
	fields, err := wire.DecodeObject(raw)
	if err != nil {
		return nil, err
	}

	if projectsRaw := fields[keyAllProjects]; !wire.IsNull(projectsRaw) {
		outcome, err := decodeAllProjects(projectsRaw)
		if err != nil {
			return nil, err
		}
		return AllProjects{Outcome: outcome}, nil
	}

	if scriptsRaw := fields[keyAllScripts]; !wire.IsNull(scriptsRaw) {
		outcome, err := decodeAllScripts(scriptsRaw)
		if err != nil {
			return nil, err
		}
		return AllScripts{Outcome: outcome}, nil
	}

	return nil, &wire.EmptyEnvelopeError{Context: "APIResponse.processed"}
}

func decodeAllProjects(raw json.RawMessage) (AllProjectsOutcome, error) {
	fields, err := wire.DecodeObject(raw)
	if err != nil {
		return nil, err
	}

	if processedRaw := fields[keyProcessed]; !wire.IsNull(processedRaw) {
		var payload projectsPayload
		if err := json.Unmarshal(processedRaw, &payload); err != nil {
			return nil, wire.Classify(err)
		}
		return AllProjectsProcessed{Projects: payload.Projects}, nil
	}

	if failedRaw := fields[keyFailed]; !wire.IsNull(failedRaw) {
		reason, detail, err := decodeFailure(failedRaw, models.AllProjectsErrors, "allProjects.failed")
		if err != nil {
			return nil, err
		}
		return AllProjectsFailed{Reason: reason, Detail: detail}, nil
	}

	return nil, &wire.EmptyEnvelopeError{Context: "APIResponse.processed.allProjects"}
}

func decodeAllScripts(raw json.RawMessage) (AllScriptsOutcome, error) {
	fields, err := wire.DecodeObject(raw)
	if err != nil {
		return nil, err
	}

	if processedRaw := fields[keyProcessed]; !wire.IsNull(processedRaw) {
		var payload scriptsPayload
		if err := json.Unmarshal(processedRaw, &payload); err != nil {
			return nil, wire.Classify(err)
		}
		return AllScriptsProcessed{Scripts: payload.Scripts}, nil
	}

	if failedRaw := fields[keyFailed]; !wire.IsNull(failedRaw) {
		reason, detail, err := decodeFailure(failedRaw, models.AllScriptsErrors, "allScripts.failed")
		if err != nil {
			return nil, err
		}
		return AllScriptsFailed{Reason: reason, Detail: detail}, nil
	}

	return nil, &wire.EmptyEnvelopeError{Context: "APIResponse.processed.allScripts"}
}

// decodeFailure resolves a failure object to whichever reason key is
// populated, in table declaration order, attaching the APIError detail
// when present. A populated key outside the table is an UnknownSymbol,
// kept distinct from malformed input so clients can tolerate
// server-added reasons.
func decodeFailure[S comparable](raw json.RawMessage, table *wire.LabelTable[S], context string) (S, *models.APIError, error) {
	var zero S

	fields, err := wire.DecodeObject(raw)
	if err != nil {
		return zero, nil, err
	}

	for _, member := range table.Members() {
		label := table.LabelOf(member)
		detailRaw, present := fields[label]
		if !present {
			continue
		}
		var detail *models.APIError
		if !wire.IsNull(detailRaw) {
			var apiErr models.APIError
			if err := json.Unmarshal(detailRaw, &apiErr); err != nil {
				return zero, nil, wire.Classify(err)
			}
			detail = &apiErr
		}
		return member, detail, nil
	}

	if len(fields) == 0 {
		return zero, nil, &wire.EmptyEnvelopeError{Context: "APIResponse." + context}
	}

	// Report the lexically first unknown label so the error is stable.
	labels := make([]string, 0, len(fields))
	for label := range fields {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return zero, nil, &wire.UnknownSymbolError{Enum: table.Enum(), Label: labels[0]}
}

// Encode re-serializes a decoded envelope in the wire's
// one-populated-key-per-level convention.
func Encode(resp APIResponse) ([]byte, error) {
	switch v := resp.(type) {
	case Processed:
		branch, err := encodeBranch(v.Branch)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{keyProcessed: branch})
	case Failed:
		failure, err := encodeFailure(models.TransportFailures.LabelOf(v.Reason), v.Detail)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{keyFailed: failure})
	default:
		return nil, fmt.Errorf("nested: unencodable response variant %T", resp)
	}
}

func encodeBranch(branch Branch) (json.RawMessage, error) {
	switch v := branch.(type) {
	case AllProjects:
		outcome, err := encodeAllProjectsOutcome(v.Outcome)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{keyAllProjects: outcome})
	case AllScripts:
		outcome, err := encodeAllScriptsOutcome(v.Outcome)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{keyAllScripts: outcome})
	default:
		return nil, fmt.Errorf("nested: unencodable branch variant %T", branch)
	}
}

func encodeAllProjectsOutcome(outcome AllProjectsOutcome) (json.RawMessage, error) {
	switch v := outcome.(type) {
	case AllProjectsProcessed:
		payload, err := json.Marshal(projectsPayload{Projects: v.Projects})
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{keyProcessed: payload})
	case AllProjectsFailed:
		failure, err := encodeFailure(models.AllProjectsErrors.LabelOf(v.Reason), v.Detail)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{keyFailed: failure})
	default:
		return nil, fmt.Errorf("nested: unencodable allProjects outcome %T", outcome)
	}
}

func encodeAllScriptsOutcome(outcome AllScriptsOutcome) (json.RawMessage, error) {
	switch v := outcome.(type) {
	case AllScriptsProcessed:
		payload, err := json.Marshal(scriptsPayload{Scripts: v.Scripts})
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{keyProcessed: payload})
	case AllScriptsFailed:
		failure, err := encodeFailure(models.AllScriptsErrors.LabelOf(v.Reason), v.Detail)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{keyFailed: failure})
	default:
		return nil, fmt.Errorf("nested: unencodable allScripts outcome %T", outcome)
	}
}

func encodeFailure(label string, detail *models.APIError) (json.RawMessage, error) {
	detailRaw := json.RawMessage("null")
	if detail != nil {
		var err error
		detailRaw, err = json.Marshal(detail)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(map[string]json.RawMessage{label: detailRaw})
}
