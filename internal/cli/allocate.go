package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mehrshaddarzi/seqid/internal/registry"
)

// AllocateResult is the allocate command's JSON payload.
type AllocateResult struct {
	PermanentID string `json:"permanent_id"`
	Category    string `json:"category"`
	SequenceID  int64  `json:"sequence_id"`
	Path        string `json:"path,omitempty"`
}

// NewAllocateCommand creates the allocate command.
func NewAllocateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "allocate <category> [permanent-id]",
		Short: "Allocate a sequence id for a published record",
		Long: `Deliver a publish event for a top-level, published record.

If the record already holds a sequence id, the existing id is returned
and the counter does not advance. When permanent-id is omitted a fresh
UUIDv7 is minted, which is handy for demos and smoke tests.

Example:
  seqid allocate product 501
  seqid allocate event`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			svc, st, err := openService(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			category := args[0]
			permanentID := ""
			if len(args) == 2 {
				permanentID = args[1]
			} else {
				permanentID = svc.NewPermanentID()
				formatter.VerboseLog("minted permanent id %s", permanentID)
			}

			seq, allocated, err := svc.Allocate(cmd.Context(), registry.PublishEvent{
				PermanentID: permanentID,
				Category:    category,
				Status:      registry.StatusPublished,
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "allocation failed", err)
			}
			if !allocated {
				_ = formatter.Error(ErrCodeIneligible, fmt.Sprintf("category %q is not configured for sequencing", category))
				return NewExitError(ExitFailure, "not eligible")
			}

			path, _, err := svc.Link(cmd.Context(), permanentID)
			if err != nil {
				return WrapExitError(ExitCommandError, "link construction failed", err)
			}

			text := fmt.Sprintf("%s #%d -> %s (%s)", category, seq, permanentID, path)
			return formatter.Success(text, AllocateResult{
				PermanentID: permanentID,
				Category:    category,
				SequenceID:  seq,
				Path:        path,
			})
		},
	}
}
