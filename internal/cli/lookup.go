package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LookupResult is the lookup command's JSON payload.
type LookupResult struct {
	PermanentID string `json:"permanent_id"`
	Category    string `json:"category"`
	SequenceID  int64  `json:"sequence_id"`
	Path        string `json:"path,omitempty"`
}

// NewLookupCommand creates the lookup command (reverse lookup).
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <permanent-id>",
		Short: "Look up the sequence id assigned to a record",
		Long: `Reverse lookup: map a permanent id to its sequence id, category,
and public path.

Example:
  seqid lookup 501`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			svc, st, err := openService(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			permanentID := args[0]
			m, found, err := svc.ResolveByPermanentID(cmd.Context(), permanentID)
			if err != nil {
				return WrapExitError(ExitCommandError, "lookup failed", err)
			}
			if !found {
				_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("no mapping for %q", permanentID))
				return NewExitError(ExitFailure, "not found")
			}

			path, _, err := svc.Link(cmd.Context(), permanentID)
			if err != nil {
				return WrapExitError(ExitCommandError, "link construction failed", err)
			}

			text := fmt.Sprintf("%s: %s #%d (%s)", m.PermanentID, m.Category, m.SequenceID, path)
			return formatter.Success(text, LookupResult{
				PermanentID: m.PermanentID,
				Category:    m.Category,
				SequenceID:  m.SequenceID,
				Path:        path,
			})
		},
	}
}
