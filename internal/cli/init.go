package cli

import (
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Provision the database schema",
		Long: `Create the seqid database and its schema.

Provisioning is create-if-absent: running init against an existing
database is a no-op and never destroys data.

Example:
  seqid init --db ./seqid.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			// Open provisions the schema as a side effect.
			_, st, err := openService(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			return formatter.Success("Database ready.", map[string]string{"status": "ready"})
		},
	}
}
