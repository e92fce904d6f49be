package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/praetorian-inc/bytekit"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	splitSep    string
	splitFormat string
	splitColor  string
)

// splitStyles holds color formatters for human split output
type splitStyles struct {
	index *color.Color
	bytes *color.Color
	empty *color.Color
}

// newSplitStyles creates color formatters for split output
// enabled=false respects --color never and the NO_COLOR env var
func newSplitStyles(enabled bool) *splitStyles {
	s := &splitStyles{
		index: color.New(color.Bold, color.FgHiBlue),
		bytes: color.New(color.FgYellow),
		empty: color.New(color.FgHiBlack),
	}

	if !enabled {
		s.index.DisableColor()
		s.bytes.DisableColor()
		s.empty.DisableColor()
	}

	return s
}

var splitCmd = &cobra.Command{
	Use:   "split <hex>",
	Short: "Split a byte sequence on a separator",
	Long:  "Decode the input and partition it on the separator bytes, printing one piece per line. Pieces between adjacent separators are empty.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

func init() {
	splitCmd.Flags().StringVar(&splitSep, "sep", "", "Separator bytes as hex (required)")
	splitCmd.Flags().StringVar(&splitFormat, "format", "human", "Output format: human, json")
	splitCmd.Flags().StringVar(&splitColor, "color", "auto", "Color output: auto, always, never")
	_ = splitCmd.MarkFlagRequired("sep")
}

func runSplit(cmd *cobra.Command, args []string) error {
	data, err := bytekit.Decode(args[0])
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	sep, err := bytekit.Decode(splitSep)
	if err != nil {
		return fmt.Errorf("decoding separator: %w", err)
	}
	if len(sep) == 0 {
		return fmt.Errorf("separator must not be empty")
	}

	var pieces [][]byte
	if len(sep) == 1 {
		pieces = bytekit.SplitByte(sep[0], data)
	} else {
		pieces = bytekit.Split(sep, data)
	}

	switch splitFormat {
	case "json":
		return outputSplitJSON(cmd, pieces)
	case "human":
		return outputSplitHuman(cmd, pieces)
	default:
		return fmt.Errorf("unknown format: %s", splitFormat)
	}
}

func outputSplitJSON(cmd *cobra.Command, pieces [][]byte) error {
	rendered := make([]string, len(pieces))
	for i, piece := range pieces {
		rendered[i] = formatHex(piece)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(rendered)
}

func outputSplitHuman(cmd *cobra.Command, pieces [][]byte) error {
	switch splitColor {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		// Check if stdout is a TTY and NO_COLOR is not set
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
	s := newSplitStyles(!color.NoColor)

	out := cmd.OutOrStdout()
	for i, piece := range pieces {
		if len(piece) == 0 {
			fmt.Fprintf(out, "%s: %s\n", s.index.Sprintf("piece %d", i), s.empty.Sprint("(empty)"))
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", s.index.Sprintf("piece %d", i), s.bytes.Sprint(formatHex(piece)))
	}
	return nil
}
