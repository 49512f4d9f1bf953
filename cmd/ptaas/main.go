package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JadKHaddad/PTaaS-Reimagined/internal/config"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/envelope"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/logging"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/models"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/nested"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/output"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/samples"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/wire"
	"github.com/JadKHaddad/PTaaS-Reimagined/internal/ws"
)

var (
	configPath string
	jsonOutput bool
	noColor    bool

	cfg *config.Config

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "ptaas",
	Short: "PTaaS payload inspector",
	Long: `ptaas decodes and inspects the typed payloads of the performance
testing service: flat-generic API response envelopes, nested-variant
response envelopes and websocket client messages.

Payloads are read from a file argument or from stdin; nothing is ever
sent over a network.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if jsonOutput {
			cfg.Output.Format = "json"
		}
		if noColor || !cfg.Output.Color {
			color.NoColor = true
		}
		return logging.Init(cfg.Logging.Level)
	},
}

// decodeCmd groups the per-family decode commands
var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a payload from a file or stdin",
}

// decodeAPICmd decodes a flat-generic API response envelope
var decodeAPICmd = &cobra.Command{
	Use:   "api [file]",
	Short: "Decode a flat-generic API response envelope",
	Long: `Decodes an envelope of the form
{"success": bool, "responseType": tag, "data": ..., "error": ...}.
The responseType tag selects the payload and error-symbol types.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPayload(args)
		if err != nil {
			return err
		}
		return decodeAPI(raw)
	},
}

// decodeResponseCmd decodes a nested-variant response envelope
var decodeResponseCmd = &cobra.Command{
	Use:   "response [file]",
	Short: "Decode a nested-variant response envelope",
	Long: `Decodes a processed/failed tree and resolves it depth-first to
its terminal branch path and payload or failure reason.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPayload(args)
		if err != nil {
			return err
		}
		return decodeResponse(raw)
	},
}

// decodeWSCmd decodes a websocket client message
var decodeWSCmd = &cobra.Command{
	Use:   "ws [file]",
	Short: "Decode a websocket client message",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPayload(args)
		if err != nil {
			return err
		}

		msg, err := ws.Decode(raw)
		if err != nil {
			printError(fmt.Sprintf("Decode failed: %v", err))
			return err
		}

		logging.Info().Str("family", "ws").Msg("decoded message")

		if cfg.Output.Format == "json" {
			encoded, err := ws.Encode(msg)
			if err != nil {
				// Unrecognized has no wire form; report it instead.
				printWarn("Unrecognized message: no known key present")
				return nil
			}
			return printRawJSON(encoded)
		}

		if _, ok := msg.(ws.Unrecognized); ok {
			printWarn("Unrecognized message: no known key present")
			return nil
		}
		output.PrintWSMessage(msg)
		return nil
	},
}

// sampleCmd prints a sample payload for a given kind
var sampleCmd = &cobra.Command{
	Use:   "sample [kind]",
	Short: "Print a sample payload",
	Long: `Prints a representative JSON payload. Kinds:

  api                successful flat-generic all-projects response
  api-failed         failed flat-generic all-projects response
  general-failed     flat-generic failure before endpoint processing
  response           fully processed nested envelope
  response-failed    nested envelope with a failed all-projects branch
  transport-failed   nested envelope failed at the transport level
  subscribe          websocket subscribe message
  unsubscribe        websocket unsubscribe message`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"api", "api-failed", "general-failed", "response", "response-failed", "transport-failed", "subscribe", "unsubscribe"},
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded, err := encodeSample(args[0])
		if err != nil {
			printError(err.Error())
			return err
		}
		return printRawJSON(encoded)
	},
}

func encodeSample(kind string) ([]byte, error) {
	switch kind {
	case "api":
		return envelope.NewJSONCodec[models.AllProjectsData, models.AllProjectsErrorType]().Encode(samples.AllProjectsSuccess())
	case "api-failed":
		return envelope.NewJSONCodec[models.AllProjectsData, models.AllProjectsErrorType]().Encode(samples.AllProjectsFailure())
	case "general-failed":
		return envelope.NewJSONCodec[struct{}, models.GeneralErrorType]().Encode(samples.GeneralFailure())
	case "response":
		return nested.Encode(samples.NestedAllProjects())
	case "response-failed":
		return nested.Encode(samples.NestedAllProjectsFailure())
	case "transport-failed":
		return nested.Encode(samples.NestedTransportFailure())
	case "subscribe":
		return ws.Encode(samples.SubscribeMessage())
	case "unsubscribe":
		return ws.Encode(samples.UnsubscribeMessage())
	default:
		return nil, fmt.Errorf("unknown sample kind: %s", kind)
	}
}

// configCmd groups config inspection commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the CLI configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cfg)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(args[0]); err != nil {
			printError(err.Error())
			return err
		}
		successColor.Println("✓ Configuration is valid")
		return nil
	},
}

func main() {
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(decodeCmd)
	decodeCmd.AddCommand(decodeAPICmd)
	decodeCmd.AddCommand(decodeResponseCmd)
	decodeCmd.AddCommand(decodeWSCmd)

	rootCmd.AddCommand(sampleCmd)

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

// readPayload reads the payload bytes from the file argument or stdin.
func readPayload(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

// Helper functions

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printRawJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return printJSON(v)
}

func printError(msg string) {
	errorColor.Fprint(os.Stderr, "✗ Error: ")
	fmt.Fprintln(os.Stderr, msg)
}

func printWarn(msg string) {
	warnColor.Fprint(os.Stderr, "⚠ ")
	fmt.Fprintln(os.Stderr, msg)
}

// tolerated reports whether a decode failure should be downgraded to a
// warning: unknown enum labels are the expected forward-compatibility
// path when the server adds failure reasons this client predates.
func tolerated(err error) bool {
	return cfg.Decode.TolerateUnknownReasons && wire.IsUnknownSymbol(err)
}
