package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/praetorian-inc/bytekit"
	"github.com/spf13/cobra"
)

var (
	findNeedle string
	findFrom   string
	findLast   bool
)

// errNotFound surfaces an absent needle in the exit status. The "not found"
// line already told the user; the error itself stays silent.
var errNotFound = errors.New("needle not found")

var findCmd = &cobra.Command{
	Use:   "find <hex>",
	Short: "Find a byte sequence inside another",
	Long:  "Search the decoded haystack for the decoded needle and print the matching offset. An absent needle prints \"not found\" and exits with status 1.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().StringVar(&findNeedle, "needle", "", "Hex bytes to search for (required)")
	findCmd.Flags().StringVar(&findFrom, "from", "", "Offset to start the scan from (default: whole array)")
	findCmd.Flags().BoolVar(&findLast, "last", false, "Search backward for the last occurrence")
	_ = findCmd.MarkFlagRequired("needle")
}

func runFind(cmd *cobra.Command, args []string) error {
	hay, err := bytekit.Decode(args[0])
	if err != nil {
		return fmt.Errorf("decoding haystack: %w", err)
	}

	needle, err := bytekit.Decode(findNeedle)
	if err != nil {
		return fmt.Errorf("decoding needle: %w", err)
	}
	if len(needle) == 0 {
		return fmt.Errorf("needle must not be empty")
	}

	from := 0
	if findFrom != "" {
		from, err = strconv.Atoi(findFrom)
		if err != nil {
			return fmt.Errorf("parsing --from: %w", err)
		}
		if from < 0 && !findLast {
			return fmt.Errorf("offset %d must not be negative for a forward search", from)
		}
	}

	var pos int
	var ok bool
	switch {
	case findLast && findFrom != "":
		pos, ok = bytekit.LastIndexFrom(hay, needle, from)
	case findLast:
		pos, ok = bytekit.LastIndex(hay, needle)
	case findFrom != "":
		pos, ok = bytekit.IndexFrom(hay, needle, from)
	default:
		pos, ok = bytekit.Index(hay, needle)
	}

	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "not found")
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return errNotFound
	}
	fmt.Fprintln(out, pos)
	return nil
}
