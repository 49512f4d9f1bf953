package ws

import (
	"errors"
	"reflect"
	"testing"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/wire"
)

func strPtr(s string) *string { return &s }

func TestDecodeSubscribe(t *testing.T) {
	msg, err := Decode([]byte(`{"Subscribe": {"project_id": "p1"}}`))
	if err != nil {
		t.Fatalf("Decode unexpected error: %v", err)
	}

	sub, ok := msg.(Subscribe)
	if !ok {
		t.Fatalf("message = %T, want Subscribe", msg)
	}
	if sub.ProjectID == nil || *sub.ProjectID != "p1" {
		t.Errorf("ProjectID = %v, want p1", sub.ProjectID)
	}
}

func TestDecodeUnsubscribe(t *testing.T) {
	msg, err := Decode([]byte(`{"Unsubscribe": {"project_id": "p1"}}`))
	if err != nil {
		t.Fatalf("Decode unexpected error: %v", err)
	}

	if _, ok := msg.(Unsubscribe); !ok {
		t.Fatalf("message = %T, want Unsubscribe", msg)
	}
}

func TestDecodeMissingProjectID(t *testing.T) {
	msg, err := Decode([]byte(`{"Subscribe": {}}`))
	if err != nil {
		t.Fatalf("Decode unexpected error: %v", err)
	}

	sub := msg.(Subscribe)
	if sub.ProjectID != nil {
		t.Errorf("ProjectID = %v, want nil", sub.ProjectID)
	}
}

func TestDecodeNeitherKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty object", `{}`},
		{"unknown key", `{"Ping": {}}`},
		{"null variants", `{"Subscribe": null, "Unsubscribe": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode([]byte(tt.raw))
			if err != nil {
				t.Fatalf("Decode unexpected error: %v", err)
			}
			if _, ok := msg.(Unrecognized); !ok {
				t.Errorf("message = %T, want Unrecognized (no implicit default variant)", msg)
			}
		})
	}
}

func TestDecodeBothKeysSubscribeWins(t *testing.T) {
	raw := []byte(`{"Subscribe": {"project_id": "p1"}, "Unsubscribe": {"project_id": "p2"}}`)

	for i := 0; i < 10; i++ {
		msg, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode unexpected error: %v", err)
		}
		sub, ok := msg.(Subscribe)
		if !ok {
			t.Fatalf("message = %T, want Subscribe (declaration-order precedence)", msg)
		}
		if sub.ProjectID == nil || *sub.ProjectID != "p1" {
			t.Fatalf("ProjectID = %v, want p1", sub.ProjectID)
		}
	}
}

func TestDecodeStructuralErrors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		malformed bool
	}{
		{"not json", `{{{`, true},
		{"not an object", `"subscribe"`, false},
		{"payload wrong kind", `{"Subscribe": "p1"}`, false},
		{"project_id wrong kind", `{"Subscribe": {"project_id": 42}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var malformed *wire.MalformedInputError
			if got := errors.As(err, &malformed); got != tt.malformed {
				t.Errorf("malformed = %v, want %v (err: %v)", got, tt.malformed, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{"subscribe", Subscribe{ProjectID: strPtr("project1")}},
		{"unsubscribe", Unsubscribe{ProjectID: strPtr("project1")}},
		{"subscribe without id", Subscribe{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.msg)
			if err != nil {
				t.Fatalf("Encode unexpected error: %v", err)
			}
			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode unexpected error: %v", err)
			}
			if !reflect.DeepEqual(decoded, tt.msg) {
				t.Errorf("round trip = %+v, want %+v", decoded, tt.msg)
			}
		})
	}
}

func TestEncodeUnrecognized(t *testing.T) {
	if _, err := Encode(Unrecognized{}); err == nil {
		t.Error("Encode(Unrecognized) expected error, got nil")
	}
}
