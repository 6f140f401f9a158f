package cli

import (
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <permanent-id>",
		Short: "Remove a record's mapping",
		Long: `Deliver a deletion event for a record. Its mapping, if any, is
removed; the category counter keeps its value, so the freed sequence id
is never reissued. Deleting an unmapped record is a no-op.

Example:
  seqid delete 501`,
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
			if err := svc.OnDelete(cmd.Context(), permanentID); err != nil {
				return WrapExitError(ExitCommandError, "delete failed", err)
			}

			return formatter.Success("Deleted.", map[string]string{"permanent_id": permanentID})
		},
	}
}
