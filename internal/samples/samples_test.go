package samples

import (
	"reflect"
	"testing"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/envelope"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/models"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/nested"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/ws"
)

func TestProjectsHaveFreshIDs(t *testing.T) {
	first := Projects()
	second := Projects()

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("Projects() lengths = %d, %d, want 2", len(first), len(second))
	}
	if first[0].ID == second[0].ID {
		t.Error("consecutive Projects() calls should generate fresh ids")
	}
}

func TestScriptsFlattensProjects(t *testing.T) {
	scripts := Scripts()
	if len(scripts) != 3 {
		t.Errorf("len(Scripts()) = %d, want 3", len(scripts))
	}
}

func TestFlatSamplesRoundTrip(t *testing.T) {
	codec := envelope.NewJSONCodec[models.AllProjectsData, models.AllProjectsErrorType]()

	tests := []struct {
		name string
		resp envelope.APIResponse[models.AllProjectsData, models.AllProjectsErrorType]
	}{
		{"success", AllProjectsSuccess()},
		{"failure", AllProjectsFailure()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := codec.Encode(tt.resp)
			if err != nil {
				t.Fatalf("Encode unexpected error: %v", err)
			}
			decoded, err := codec.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode unexpected error: %v", err)
			}
			if !reflect.DeepEqual(decoded, tt.resp) {
				t.Errorf("round trip = %+v, want %+v", decoded, tt.resp)
			}
		})
	}
}

func TestNestedSamplesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		resp nested.APIResponse
	}{
		{"processed", NestedAllProjects()},
		{"branch failure", NestedAllProjectsFailure()},
		{"transport failure", NestedTransportFailure()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := nested.Encode(tt.resp)
			if err != nil {
				t.Fatalf("Encode unexpected error: %v", err)
			}
			decoded, err := nested.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode unexpected error: %v", err)
			}
			if !reflect.DeepEqual(decoded, tt.resp) {
				t.Errorf("round trip = %+v, want %+v", decoded, tt.resp)
			}
		})
	}
}

func TestWSSamplesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  ws.Message
	}{
		{"subscribe", SubscribeMessage()},
		{"unsubscribe", UnsubscribeMessage()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := ws.Encode(tt.msg)
			if err != nil {
				t.Fatalf("Encode unexpected error: %v", err)
			}
			decoded, err := ws.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode unexpected error: %v", err)
			}
			if !reflect.DeepEqual(decoded, tt.msg) {
				t.Errorf("round trip = %+v, want %+v", decoded, tt.msg)
			}
		})
	}
}
