package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLinkCommand creates the link command.
func NewLinkCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "link <permanent-id>",
		Short: "Print the public path for a record",
		Long: `Build the display URL path for a sequenced record:
/<base-path>/<sequence-id>/. The base path honors the storefront
override for its configured category.

Example:
  seqid link 501`,
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
			path, found, err := svc.Link(cmd.Context(), permanentID)
			if err != nil {
				return WrapExitError(ExitCommandError, "link construction failed", err)
			}
			if !found {
				_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("no mapping for %q", permanentID))
				return NewExitError(ExitFailure, "not found")
			}

			return formatter.Success(path, map[string]string{"path": path})
		},
	}
}
