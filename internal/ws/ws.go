// Package ws models the client→server websocket control messages.
//
// The wire format is a discriminated union encoded via distinctly-named
// optional keys ("Subscribe"/"Unsubscribe") rather than a tag+payload
// pair. Internally the union is an explicit sum including an
// Unrecognized variant; Decode is the single adapter translating the
// which-key-is-set convention into a variant.
package ws

import (
	"encoding/json"
	"fmt"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/wire"
)

// Wire keys. Capitalized on the wire, unlike the API envelope families.
const (
	keySubscribe   = "Subscribe"
	keyUnsubscribe = "Unsubscribe"
)

// Message is one decoded client control message.
type Message interface {
	isMessage()
}

// Subscribe asks the server to start streaming updates for a project.
type Subscribe struct {
	ProjectID *string
}

func (Subscribe) isMessage() {}

// Unsubscribe stops the stream for a project.
type Unsubscribe struct {
	ProjectID *string
}

func (Unsubscribe) isMessage() {}

// Unrecognized is a structurally valid message carrying none of the
// known keys. Callers must handle it explicitly instead of assuming a
// default variant.
type Unrecognized struct{}

func (Unrecognized) isMessage() {}

type payload struct {
	ProjectID *string `json:"project_id,omitempty"`
}

// Decode resolves an inbound control message by the keys present in the
// object. The wire format does not forbid both keys at once; when both
// are populated, Subscribe wins by declaration order. Neither key
// populated decodes successfully as Unrecognized.
func Decode(raw []byte) (Message, error) {
	fields, err := wire.DecodeObject(raw)
	if err != nil {
		return nil, err
	}

	if subRaw := fields[keySubscribe]; !wire.IsNull(subRaw) {
		p, err := decodePayload(subRaw)
		if err != nil {
			return nil, err
		}
		return Subscribe{ProjectID: p.ProjectID}, nil
	}

	if unsubRaw := fields[keyUnsubscribe]; !wire.IsNull(unsubRaw) {
		p, err := decodePayload(unsubRaw)
		if err != nil {
			return nil, err
		}
		return Unsubscribe{ProjectID: p.ProjectID}, nil
	}

	return Unrecognized{}, nil
}

func decodePayload(raw json.RawMessage) (payload, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, wire.Classify(err)
	}
	return p, nil
}

// Encode serializes a message under its wire key. Encoding Unrecognized
// is a programmer error: it has no wire representation.
func Encode(msg Message) ([]byte, error) {
	switch v := msg.(type) {
	case Subscribe:
		return json.Marshal(map[string]payload{keySubscribe: {ProjectID: v.ProjectID}})
	case Unsubscribe:
		return json.Marshal(map[string]payload{keyUnsubscribe: {ProjectID: v.ProjectID}})
	default:
		return nil, fmt.Errorf("ws: message variant %T has no wire representation", msg)
	}
}
