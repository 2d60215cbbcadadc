package stubc

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

func loadPackages(ctx context.Context, wd string, patterns []string, tests bool) ([]*packages.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	patterns = append(make([]string, 0, len(patterns)), patterns...)
	for i, pattern := range patterns {
		patterns[i] = "pattern=" + pattern
	}

	cfg := &packages.Config{
		Context:    ctx,
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:        wd,
		Tests:      tests,
		BuildFlags: []string{"-tags=" + buildTag},
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}

	var errMessage string
	for _, p := range pkgs {
		for _, e := range p.Errors {
			errMessage += "\n\t" + e.Error()
		}
	}
	if errMessage != "" {
		return nil, errors.New(errMessage)
	}

	if tests {
		pkgs = dropShadowedPackages(pkgs)
	}

	return pkgs, nil
}

// dropShadowedPackages removes test binaries and every package whose test
// variant, "p [p.test]", was loaded too, since the variant holds all of its
// files.
func dropShadowedPackages(pkgs []*packages.Package) []*packages.Package {
	variants := map[string]bool{}
	for _, p := range pkgs {
		if strings.HasSuffix(p.ID, "]") && !strings.HasSuffix(p.PkgPath, "_test") {
			variants[p.PkgPath] = true
		}
	}

	out := pkgs[:0]
	for _, p := range pkgs {
		if strings.HasSuffix(p.ID, ".test") {
			continue
		}
		if variants[p.PkgPath] && p.ID == p.PkgPath {
			continue
		}

		out = append(out, p)
	}

	return out
}
