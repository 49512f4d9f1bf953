package models

import (
	"encoding/json"
	"fmt"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/wire"
)

// Failure-symbol enumerations. Every member carries an explicit wire
// label in its table; the label, not the Go name, is what appears in
// the interchange format.

// AllProjectsErrorType enumerates failure reasons for the all-projects
// endpoint.
type AllProjectsErrorType int

const (
	CantReadProjects AllProjectsErrorType = iota
	AProjectIsMissing
)

// AllProjectsErrors is the label table for AllProjectsErrorType.
var AllProjectsErrors = wire.NewLabelTable("AllProjectsErrorType",
	[]AllProjectsErrorType{CantReadProjects, AProjectIsMissing},
	map[AllProjectsErrorType]string{
		CantReadProjects:  "cantReadProjects",
		AProjectIsMissing: "aProjectIsMissing",
	})

func (t AllProjectsErrorType) String() string { return AllProjectsErrors.LabelOf(t) }

func (t AllProjectsErrorType) MarshalJSON() ([]byte, error) {
	return json.Marshal(AllProjectsErrors.LabelOf(t))
}

func (t *AllProjectsErrorType) UnmarshalJSON(data []byte) error {
	return unmarshalSymbol(data, AllProjectsErrors, t)
}

// AllScriptsErrorType enumerates failure reasons for the all-scripts
// endpoint.
type AllScriptsErrorType int

const (
	CantReadScripts AllScriptsErrorType = iota
	AScriptIsMissing
	CorrespondingProjectIsMissing
)

// AllScriptsErrors is the label table for AllScriptsErrorType.
var AllScriptsErrors = wire.NewLabelTable("AllScriptsErrorType",
	[]AllScriptsErrorType{CantReadScripts, AScriptIsMissing, CorrespondingProjectIsMissing},
	map[AllScriptsErrorType]string{
		CantReadScripts:               "cantReadScripts",
		AScriptIsMissing:              "aScriptIsMissing",
		CorrespondingProjectIsMissing: "correspondingProjectIsMissing",
	})

func (t AllScriptsErrorType) String() string { return AllScriptsErrors.LabelOf(t) }

func (t AllScriptsErrorType) MarshalJSON() ([]byte, error) {
	return json.Marshal(AllScriptsErrors.LabelOf(t))
}

func (t *AllScriptsErrorType) UnmarshalJSON(data []byte) error {
	return unmarshalSymbol(data, AllScriptsErrors, t)
}

// GeneralErrorType enumerates failures raised before a request reaches
// endpoint processing.
type GeneralErrorType int

const (
	APIKeyIsMissing GeneralErrorType = iota
	APIKeyIsInvalid
)

// GeneralErrors is the label table for GeneralErrorType.
var GeneralErrors = wire.NewLabelTable("GeneralErrorType",
	[]GeneralErrorType{APIKeyIsMissing, APIKeyIsInvalid},
	map[GeneralErrorType]string{
		APIKeyIsMissing: "apiKeyIsMissing",
		APIKeyIsInvalid: "apiKeyIsInvalid",
	})

func (t GeneralErrorType) String() string { return GeneralErrors.LabelOf(t) }

func (t GeneralErrorType) MarshalJSON() ([]byte, error) {
	return json.Marshal(GeneralErrors.LabelOf(t))
}

func (t *GeneralErrorType) UnmarshalJSON(data []byte) error {
	return unmarshalSymbol(data, GeneralErrors, t)
}

// TransportFailureType enumerates top-level transport failures of the
// nested envelope family.
type TransportFailureType int

const (
	MissingToken TransportFailureType = iota
	EmptyToken
	NotLoggedIn
	InternalServerError
)

// TransportFailures is the label table for TransportFailureType.
var TransportFailures = wire.NewLabelTable("TransportFailureType",
	[]TransportFailureType{MissingToken, EmptyToken, NotLoggedIn, InternalServerError},
	map[TransportFailureType]string{
		MissingToken:        "missingToken",
		EmptyToken:          "emptyToken",
		NotLoggedIn:         "notLoggedIn",
		InternalServerError: "internalServerError",
	})

func (t TransportFailureType) String() string { return TransportFailures.LabelOf(t) }

func (t TransportFailureType) MarshalJSON() ([]byte, error) {
	return json.Marshal(TransportFailures.LabelOf(t))
}

func (t *TransportFailureType) UnmarshalJSON(data []byte) error {
	return unmarshalSymbol(data, TransportFailures, t)
}

// unmarshalSymbol decodes a JSON string through a label table. A
// non-string value is a type mismatch; a string outside the table is an
// UnknownSymbolError, kept distinct so callers can tolerate
// server-added reasons.
func unmarshalSymbol[S comparable](data []byte, table *wire.LabelTable[S], out *S) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return &wire.TypeMismatchError{Field: fmt.Sprintf("%s label", table.Enum()), Expected: "string"}
	}
	s, err := table.SymbolOf(label)
	if err != nil {
		return err
	}
	*out = s
	return nil
}
