package main

import (
	"encoding/json"
	"fmt"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/envelope"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/logging"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/models"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/nested"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/output"
)

// decodeAPI decodes a flat-generic envelope. The responseType tag is
// probed first with raw payload and symbol codecs, then the envelope is
// decoded again against the concrete types the tag selects.
func decodeAPI(raw []byte) error {
	probe, err := envelope.NewJSONCodec[json.RawMessage, json.RawMessage]().Decode(raw)
	if err != nil {
		printError(fmt.Sprintf("Decode failed: %v", err))
		return err
	}

	logging.Info().Str("family", "api").Str("responseType", probe.ResponseType.String()).Msg("decoded envelope")

	switch probe.ResponseType {
	case envelope.AllProjectsResponse:
		resp, err := envelope.NewJSONCodec[models.AllProjectsData, models.AllProjectsErrorType]().Decode(raw)
		if err != nil {
			return reportDecodeFailure(err)
		}
		return printAPIResponse(resp, func(data models.AllProjectsData) {
			output.PrintProjectsTable(data.Projects)
		})
	case envelope.AllScriptsResponse:
		resp, err := envelope.NewJSONCodec[models.AllScriptsData, models.AllScriptsErrorType]().Decode(raw)
		if err != nil {
			return reportDecodeFailure(err)
		}
		return printAPIResponse(resp, func(data models.AllScriptsData) {
			output.PrintScriptsTable(data.Scripts)
		})
	default:
		resp, err := envelope.NewJSONCodec[struct{}, models.GeneralErrorType]().Decode(raw)
		if err != nil {
			return reportDecodeFailure(err)
		}
		return printAPIResponse(resp, func(struct{}) {})
	}
}

// printAPIResponse renders a decoded envelope; printData renders the
// payload when one is present.
func printAPIResponse[D, E any](resp envelope.APIResponse[D, E], printData func(D)) error {
	if cfg.Output.Format == "json" {
		encoded, err := envelope.NewJSONCodec[D, E]().Encode(resp)
		if err != nil {
			return err
		}
		return printRawJSON(encoded)
	}

	if resp.Success {
		successColor.Printf("✓ Success (%s)\n", resp.ResponseType)
	} else {
		errorColor.Printf("✗ Failed (%s)\n", resp.ResponseType)
	}

	if resp.Error != nil {
		fmt.Printf("Error type: %v\n", resp.Error.ErrorType)
		fmt.Printf("Error message: %s\n", resp.Error.ErrorMessage)
	}

	if resp.Data != nil {
		if !resp.Success {
			// Data alongside success=false is legal on the wire; flag
			// it instead of hiding it.
			printWarn("Envelope carries data despite success=false")
		}
		printData(*resp.Data)
	}

	return nil
}

// decodeResponse decodes a nested-variant envelope and resolves it to
// its terminal branch path.
func decodeResponse(raw []byte) error {
	resp, err := nested.Decode(raw)
	if err != nil {
		return reportDecodeFailure(err)
	}

	res := nested.Resolve(resp)
	logging.Info().Str("family", "response").Strs("path", res.Path).Msg("resolved envelope")

	if cfg.Output.Format == "json" {
		encoded, err := nested.Encode(resp)
		if err != nil {
			return err
		}
		return printRawJSON(encoded)
	}

	if res.Failed() {
		errorColor.Println("✗ Failed")
	} else {
		successColor.Println("✓ Processed")
	}
	output.PrintResolution(res)
	return nil
}

// reportDecodeFailure prints a decode failure, downgrading unknown
// enum labels to warnings when the configuration tolerates them.
func reportDecodeFailure(err error) error {
	if tolerated(err) {
		logging.Warn().Err(err).Msg("tolerated unknown symbol")
		printWarn(fmt.Sprintf("Tolerated: %v", err))
		return nil
	}
	printError(fmt.Sprintf("Decode failed: %v", err))
	return err
}
