package config

import (
	_ "embed"
	"fmt"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaCUE string

// Validate checks the configuration against the embedded CUE schema,
// then applies the cross-field rules the schema cannot express.
func (c *Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("config schema missing #Config: %w", err)
	}

	unified := def.Unify(ctx.Encode(c))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Storefront != nil && !slices.Contains(c.Categories, c.Storefront.Category) {
		return fmt.Errorf("invalid configuration: storefront category %q is not in categories", c.Storefront.Category)
	}

	return nil
}
