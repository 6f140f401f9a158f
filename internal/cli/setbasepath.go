package cli

import (
	"github.com/spf13/cobra"

	"github.com/mehrshaddarzi/seqid/internal/config"
)

// NewSetBasePathCommand creates the set-base-path command.
func NewSetBasePathCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-base-path <value>",
		Short: "Set the storefront base-path override",
		Long: `Write the storefront collaborator's base-path override into the
settings store. The configured storefront category's public URLs use
this segment instead of the category name.

Example:
  seqid set-base-path shop`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			cfg, err := config.Load(rootOpts.Config)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			if cfg.Storefront == nil {
				return NewExitError(ExitCommandError, "no storefront category configured")
			}

			_, st, err := openService(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			value := args[0]
			if err := st.SetSetting(cmd.Context(), cfg.StorefrontOptionKey(), value); err != nil {
				return WrapExitError(ExitCommandError, "failed to store base path", err)
			}

			return formatter.Success("Base path updated.", map[string]string{
				"category":  cfg.StorefrontCategory(),
				"base_path": value,
			})
		},
	}
}
