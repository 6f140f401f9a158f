package cli

import (
	"github.com/spf13/cobra"

	"github.com/mehrshaddarzi/seqid/internal/config"
	"github.com/mehrshaddarzi/seqid/internal/registry"
	"github.com/mehrshaddarzi/seqid/internal/store"
)

// openService loads configuration, opens the database (provisioning the
// schema if needed), and constructs the registry service. The caller
// owns the returned store and must Close it.
func openService(opts *RootOptions) (*registry.Service, *store.Store, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	dbPath := cfg.Database
	if opts.Database != "" {
		dbPath = opts.Database
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	svc, err := registry.New(st, registry.Options{
		Categories:          cfg.Categories,
		StorefrontCategory:  cfg.StorefrontCategory(),
		StorefrontOptionKey: cfg.StorefrontOptionKey(),
	})
	if err != nil {
		st.Close()
		return nil, nil, WrapExitError(ExitCommandError, "failed to build registry", err)
	}

	return svc, st, nil
}

// newFormatter builds the output formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
