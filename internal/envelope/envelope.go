package envelope

import (
	"encoding/json"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/wire"
)

// ResponseType tags the flat-generic envelope with the endpoint that
// produced it.
type ResponseType int

const (
	// GeneralResponse indicates a failure raised before the request
	// reached endpoint processing.
	GeneralResponse ResponseType = iota
	AllProjectsResponse
	AllScriptsResponse
)

// ResponseTypes is the closed tag set for ResponseType.
var ResponseTypes = wire.NewLabelTable("ResponseType",
	[]ResponseType{GeneralResponse, AllProjectsResponse, AllScriptsResponse},
	map[ResponseType]string{
		GeneralResponse:     "generalResponse",
		AllProjectsResponse: "allProjectsResponse",
		AllScriptsResponse:  "allScriptsResponse",
	})

func (t ResponseType) String() string { return ResponseTypes.LabelOf(t) }

func (t ResponseType) MarshalJSON() ([]byte, error) {
	return json.Marshal(ResponseTypes.LabelOf(t))
}

// UnmarshalJSON resolves the wire tag against the closed tag set. An
// unrecognized tag is a hard decode failure, not a default.
func (t *ResponseType) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return &wire.TypeMismatchError{Field: "responseType", Expected: "string"}
	}
	s, err := ResponseTypes.SymbolOf(tag)
	if err != nil {
		return &wire.UnknownResponseTypeError{Tag: tag}
	}
	*t = s
	return nil
}

// APIResponse is the flat-generic envelope: a tri-state outcome of
// success-with-data, domain failure, or transport-level failure, over a
// payload type D and an error-symbol type E.
//
// The shape itself does not enforce exclusivity: a decoded value may
// carry both Data and Error, or neither, regardless of Success.
// Consumers must check Success before trusting which side is populated.
type APIResponse[D, E any] struct {
	Success      bool
	ResponseType ResponseType
	Data         *D
	Error        *ResponseError[E]
}

// ResponseError carries the endpoint-specific error symbol plus a human
// readable message.
type ResponseError[E any] struct {
	ErrorType    E
	ErrorMessage string
}
