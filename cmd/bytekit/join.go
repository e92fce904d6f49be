package main

import (
	"fmt"

	"github.com/praetorian-inc/bytekit"
	"github.com/spf13/cobra"
)

var joinSep string

var joinCmd = &cobra.Command{
	Use:   "join <hex>...",
	Short: "Concatenate byte sequences",
	Long:  "Decode each argument and concatenate the results, placing the separator between adjacent pieces. Without --sep the pieces are joined directly.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJoin,
}

func init() {
	joinCmd.Flags().StringVar(&joinSep, "sep", "", "Separator bytes as hex (optional)")
}

func runJoin(cmd *cobra.Command, args []string) error {
	pieces := make([][]byte, len(args))
	for i, arg := range args {
		decoded, err := bytekit.Decode(arg)
		if err != nil {
			return fmt.Errorf("decoding piece %d: %w", i, err)
		}
		pieces[i] = decoded
	}

	sep, err := bytekit.Decode(joinSep)
	if err != nil {
		return fmt.Errorf("decoding separator: %w", err)
	}

	var joined []byte
	switch len(sep) {
	case 0:
		joined = bytekit.Concat(pieces...)
	case 1:
		joined = bytekit.JoinByte(sep[0], pieces...)
	default:
		joined = bytekit.Join(sep, pieces...)
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatHex(joined))
	return nil
}
