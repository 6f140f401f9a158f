package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ResolveResult is the resolve command's JSON payload.
type ResolveResult struct {
	Category    string `json:"category"`
	SequenceID  string `json:"sequence_id"`
	PermanentID string `json:"permanent_id"`
}

// NewResolveCommand creates the resolve command (forward lookup).
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <category> <sequence>",
		Short: "Resolve a sequence id to its permanent record",
		Long: `Forward lookup: map (category, sequence id) to a permanent id,
the same resolution request routing performs on incoming URLs.

A miss (including malformed sequence input) exits 1; it is an expected
outcome, not a command error.

Example:
  seqid resolve product 2`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			svc, st, err := openService(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			category, sequence := args[0], args[1]
			permanentID, found, err := svc.ResolveSequenceString(cmd.Context(), category, sequence)
			if err != nil {
				return WrapExitError(ExitCommandError, "resolution failed", err)
			}
			if !found {
				_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("no mapping for %s/%s", category, sequence))
				return NewExitError(ExitFailure, "not found")
			}

			return formatter.Success(permanentID, ResolveResult{
				Category:    category,
				SequenceID:  sequence,
				PermanentID: permanentID,
			})
		},
	}
}
