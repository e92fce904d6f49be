package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/praetorian-inc/bytekit"
	"github.com/spf13/cobra"
)

var decodeFormat string

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode hexadecimal text to bytes",
	Long:  "Decode whitespace-separated hexadecimal text to bytes. Pass - to read the hex text from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "hex", "Output format: hex, go, raw")
}

func runDecode(cmd *cobra.Command, args []string) error {
	text := args[0]
	if text == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	decoded, err := bytekit.Decode(text)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	out := cmd.OutOrStdout()
	switch decodeFormat {
	case "hex":
		fmt.Fprintln(out, formatHex(decoded))
	case "go":
		parts := make([]string, len(decoded))
		for i, b := range decoded {
			parts[i] = fmt.Sprintf("0x%02X", b)
		}
		fmt.Fprintf(out, "[]byte{%s}\n", strings.Join(parts, ", "))
	case "raw":
		if _, err := out.Write(decoded); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", decodeFormat)
	}
	return nil
}

// formatHex renders bytes as lowercase space-separated pairs, the same
// shape the commands accept as input.
func formatHex(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}
