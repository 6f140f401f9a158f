package registry

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// BasePath returns the path segment used to build and route a category's
// public URLs. Every category uses its own name, except the configured
// storefront category, whose segment an external collaborator may
// override through the settings store. Returns ok=false for categories
// outside the configured set.
func (s *Service) BasePath(ctx context.Context, category string) (string, bool, error) {
	if !s.categories[category] {
		return "", false, nil
	}

	if category == s.storefrontCategory && s.storefrontCategory != "" {
		override, found, err := s.store.Setting(ctx, s.storefrontKey)
		if err != nil {
			return "", false, err
		}
		if found {
			if base := normalizeBasePath(override); base != "" {
				return base, true, nil
			}
		}
	}

	return normalizeBasePath(category), true, nil
}

// CategoryForBasePath inverts BasePath for request routing. The override
// shadows the storefront category's own name, so at most one category can
// claim any given segment; ties resolve in declaration order.
func (s *Service) CategoryForBasePath(ctx context.Context, base string) (string, bool, error) {
	want := normalizeBasePath(base)
	if want == "" {
		return "", false, nil
	}
	for _, category := range s.order {
		got, ok, err := s.BasePath(ctx, category)
		if err != nil {
			return "", false, err
		}
		if ok && got == want {
			return category, true, nil
		}
	}
	return "", false, nil
}

// normalizeBasePath canonicalizes a path segment: NFC normalization,
// lower case, surrounding slashes and whitespace stripped. An override
// that normalizes to empty falls back to the category name.
func normalizeBasePath(s string) string {
	s = norm.NFC.String(s)
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "/")
	return strings.ToLower(s)
}
