package models

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/wire"
)

func TestProjectRoundTrip(t *testing.T) {
	project := Project{
		ID:        "project1",
		Installed: true,
		Scripts: []Script{
			{ID: "script1"},
			{ID: "script2"},
		},
	}

	data, err := json.Marshal(project)
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}

	var got Project
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, project) {
		t.Errorf("round trip = %+v, want %+v", got, project)
	}
}

func TestProjectScriptOrderPreserved(t *testing.T) {
	project := Project{
		ID:        "p",
		Installed: false,
		Scripts:   []Script{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}},
	}

	data, err := json.Marshal(project)
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}

	var got Project
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}

	want := []string{"s1", "s2", "s3"}
	for i, s := range got.Scripts {
		if s.ID != want[i] {
			t.Errorf("Scripts[%d].ID = %q, want %q", i, s.ID, want[i])
		}
	}
}

func TestProjectDuplicateScriptsKept(t *testing.T) {
	project := Project{
		ID:      "p",
		Scripts: []Script{{ID: "dup"}, {ID: "dup"}},
	}

	data, err := json.Marshal(project)
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}

	var got Project
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}
	if len(got.Scripts) != 2 {
		t.Errorf("duplicate scripts deduplicated: got %d, want 2", len(got.Scripts))
	}
}

func TestAPIErrorOptionalReason(t *testing.T) {
	withReason := Reasonf("broken", "permissions")
	data, err := json.Marshal(withReason)
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}
	if string(data) != `{"message":"broken","reason":"permissions"}` {
		t.Errorf("Marshal with reason = %s", data)
	}

	withoutReason := APIError{Message: "broken"}
	data, err = json.Marshal(withoutReason)
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}
	if string(data) != `{"message":"broken"}` {
		t.Errorf("Marshal without reason = %s, reason should be omitted", data)
	}
}

func TestEnumWireLabels(t *testing.T) {
	tests := []struct {
		name   string
		symbol json.Marshaler
		label  string
	}{
		{"cantReadProjects", CantReadProjects, `"cantReadProjects"`},
		{"aProjectIsMissing", AProjectIsMissing, `"aProjectIsMissing"`},
		{"cantReadScripts", CantReadScripts, `"cantReadScripts"`},
		{"aScriptIsMissing", AScriptIsMissing, `"aScriptIsMissing"`},
		{"correspondingProjectIsMissing", CorrespondingProjectIsMissing, `"correspondingProjectIsMissing"`},
		{"apiKeyIsMissing", APIKeyIsMissing, `"apiKeyIsMissing"`},
		{"apiKeyIsInvalid", APIKeyIsInvalid, `"apiKeyIsInvalid"`},
		{"missingToken", MissingToken, `"missingToken"`},
		{"emptyToken", EmptyToken, `"emptyToken"`},
		{"notLoggedIn", NotLoggedIn, `"notLoggedIn"`},
		{"internalServerError", InternalServerError, `"internalServerError"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.symbol.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON unexpected error: %v", err)
			}
			if string(data) != tt.label {
				t.Errorf("MarshalJSON = %s, want %s", data, tt.label)
			}
		})
	}
}

func TestEnumDecodeRoundTrip(t *testing.T) {
	var symbol AllScriptsErrorType
	if err := json.Unmarshal([]byte(`"correspondingProjectIsMissing"`), &symbol); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}
	if symbol != CorrespondingProjectIsMissing {
		t.Errorf("Unmarshal = %v, want CorrespondingProjectIsMissing", symbol)
	}
}

func TestEnumUnknownLabel(t *testing.T) {
	var symbol AllProjectsErrorType
	err := json.Unmarshal([]byte(`"notARealReason"`), &symbol)
	if err == nil {
		t.Fatal("expected error for unknown label, got nil")
	}

	var unknown *wire.UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %T, want *wire.UnknownSymbolError", err)
	}
	if unknown.Label != "notARealReason" {
		t.Errorf("UnknownSymbolError.Label = %q, want %q", unknown.Label, "notARealReason")
	}

	var malformed *wire.MalformedInputError
	if errors.As(err, &malformed) {
		t.Error("unknown label must not be classified as malformed input")
	}
}

func TestEnumNonStringLabel(t *testing.T) {
	var symbol GeneralErrorType
	err := json.Unmarshal([]byte(`42`), &symbol)
	if err == nil {
		t.Fatal("expected error for non-string label, got nil")
	}

	var mismatch *wire.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %T, want *wire.TypeMismatchError", err)
	}
}
