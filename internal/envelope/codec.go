package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/wire"
)

// DecodeFunc turns a raw JSON fragment into a T.
type DecodeFunc[T any] func(json.RawMessage) (T, error)

// EncodeFunc turns a T back into a raw JSON fragment.
type EncodeFunc[T any] func(T) (json.RawMessage, error)

// Codec decodes and encodes APIResponse[D, E] without knowing the shape
// of D or E: the caller supplies the codecs for both. DecodeSymbol is
// only ever called on the nested errorType value, never on the whole
// error object; DecodeData is only called when data is non-null.
type Codec[D, E any] struct {
	DecodeData   DecodeFunc[D]
	EncodeData   EncodeFunc[D]
	DecodeSymbol DecodeFunc[E]
	EncodeSymbol EncodeFunc[E]
}

// NewJSONCodec builds a Codec whose payload and symbol codecs go through
// encoding/json. Suits any D and E with plain or custom JSON marshaling.
func NewJSONCodec[D, E any]() Codec[D, E] {
	return Codec[D, E]{
		DecodeData:   JSONDecoder[D](),
		EncodeData:   JSONEncoder[D](),
		DecodeSymbol: JSONDecoder[E](),
		EncodeSymbol: JSONEncoder[E](),
	}
}

// JSONDecoder returns a DecodeFunc backed by encoding/json, with errors
// classified into the decode taxonomy.
func JSONDecoder[T any]() DecodeFunc[T] {
	return func(raw json.RawMessage) (T, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			var zero T
			return zero, wire.Classify(err)
		}
		return v, nil
	}
}

// JSONEncoder returns an EncodeFunc backed by encoding/json. A marshal
// failure here means T itself is unencodable, which is a programmer
// error rather than a data error.
func JSONEncoder[T any]() EncodeFunc[T] {
	return func(v T) (json.RawMessage, error) {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("unencodable payload %T: %w", v, err)
		}
		return data, nil
	}
}

// Decode parses a flat-generic envelope. success and responseType are
// required; data and error may each independently be null or absent.
// Presence of data and error is NOT checked against success — that
// looseness is part of the wire contract and is left to consumers.
func (c Codec[D, E]) Decode(raw []byte) (APIResponse[D, E], error) {
	var resp APIResponse[D, E]

	fields, err := wire.DecodeObject(raw)
	if err != nil {
		return resp, err
	}

	success, err := wire.DecodeBool("success", fields["success"])
	if err != nil {
		return resp, err
	}
	resp.Success = success

	tagRaw := fields["responseType"]
	if wire.IsNull(tagRaw) {
		return resp, &wire.MissingFieldError{Field: "responseType"}
	}
	if err := resp.ResponseType.UnmarshalJSON(tagRaw); err != nil {
		return resp, err
	}

	if dataRaw := fields["data"]; !wire.IsNull(dataRaw) {
		if c.DecodeData == nil {
			panic("envelope: Codec.DecodeData is nil")
		}
		data, err := c.DecodeData(dataRaw)
		if err != nil {
			return resp, err
		}
		resp.Data = &data
	}

	if errRaw := fields["error"]; !wire.IsNull(errRaw) {
		respErr, err := c.decodeError(errRaw)
		if err != nil {
			return resp, err
		}
		resp.Error = respErr
	}

	return resp, nil
}

func (c Codec[D, E]) decodeError(raw json.RawMessage) (*ResponseError[E], error) {
	fields, err := wire.DecodeObject(raw)
	if err != nil {
		return nil, err
	}

	typeRaw := fields["errorType"]
	if wire.IsNull(typeRaw) {
		return nil, &wire.MissingFieldError{Field: "errorType"}
	}
	if c.DecodeSymbol == nil {
		panic("envelope: Codec.DecodeSymbol is nil")
	}
	symbol, err := c.DecodeSymbol(typeRaw)
	if err != nil {
		return nil, err
	}

	message, err := wire.DecodeString("errorMessage", fields["errorMessage"])
	if err != nil {
		return nil, err
	}

	return &ResponseError[E]{ErrorType: symbol, ErrorMessage: message}, nil
}

type envelopeWire struct {
	Success      bool            `json:"success"`
	ResponseType ResponseType    `json:"responseType"`
	Data         json.RawMessage `json:"data,omitempty"`
	Error        json.RawMessage `json:"error,omitempty"`
}

type responseErrorWire struct {
	ErrorType    json.RawMessage `json:"errorType"`
	ErrorMessage string          `json:"errorMessage"`
}

// Encode re-serializes an envelope, omitting absent optional fields.
func (c Codec[D, E]) Encode(resp APIResponse[D, E]) ([]byte, error) {
	out := envelopeWire{
		Success:      resp.Success,
		ResponseType: resp.ResponseType,
	}

	if resp.Data != nil {
		if c.EncodeData == nil {
			panic("envelope: Codec.EncodeData is nil")
		}
		data, err := c.EncodeData(*resp.Data)
		if err != nil {
			return nil, err
		}
		out.Data = data
	}

	if resp.Error != nil {
		if c.EncodeSymbol == nil {
			panic("envelope: Codec.EncodeSymbol is nil")
		}
		symbol, err := c.EncodeSymbol(resp.Error.ErrorType)
		if err != nil {
			return nil, err
		}
		errWire, err := json.Marshal(responseErrorWire{
			ErrorType:    symbol,
			ErrorMessage: resp.Error.ErrorMessage,
		})
		if err != nil {
			return nil, err
		}
		out.Error = errWire
	}

	return json.Marshal(out)
}
