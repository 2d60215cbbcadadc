package stubc

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	stubcPath = "github.com/KimMachineGun/stubc"
	buildTag  = "stubc"

	defaultDestination     = "stubc_gen.go"
	defaultTestDestination = "stubc_gen_test.go"
	defaultProxyNamePrefix = "stubc"
	defaultProxyNameSuffix = ""
)

type Stubc struct {
	wd       string
	patterns []string
}

func New(wd string, patterns []string) *Stubc {
	return &Stubc{
		wd:       wd,
		patterns: patterns,
	}
}

// Generate runs the generator functions found in the packages matching
// patterns, relative to wd.
func Generate(ctx context.Context, wd string, patterns []string) error {
	return New(wd, patterns).Execute(ctx)
}

func (s *Stubc) Execute(ctx context.Context) error {
	pkgs, err := loadPackages(ctx, s.wd, s.patterns, true)
	if err != nil {
		return errors.Wrap(err, "cannot load packages")
	}

	for _, pkg := range pkgs {
		if _, ok := pkg.Imports[stubcPath]; !ok {
			continue
		}

		generators, err := newParser(pkg).Parse()
		if err != nil {
			return errors.Wrapf(err, "package %q", pkg.PkgPath)
		}

		for _, g := range generators {
			err = g.Generate("//go:generate stubc")
			if err != nil {
				return errors.Wrapf(err, "package %q: cannot generate proxies", pkg.PkgPath)
			}
		}
	}

	return nil
}

// Flags are the options of the flag mode, which generates proxies without a
// generator function.
type Flags struct {
	Destination     string
	ProxyNamePrefix string
	ProxyNameSuffix string
	// Interfaces are patterns of the form {package-path}.{interface-name}.
	Interfaces []string
}

// GenerateWithFlags writes proxies of flags.Interfaces into the package in
// wd.
func GenerateWithFlags(ctx context.Context, wd string, flags Flags) error {
	if flags.Destination == "" {
		return errors.New("destination should not be an empty string")
	}
	if filepath.Ext(flags.Destination) != ".go" {
		return errors.Errorf("%q is not a go file", flags.Destination)
	}
	if flags.ProxyNamePrefix == "" && flags.ProxyNameSuffix == "" {
		return errors.New("at least one of the proxy name prefix and proxy name suffix must not be an empty string")
	}

	pkgs, err := loadPackages(ctx, wd, []string{"."}, false)
	if err != nil {
		return errors.Wrap(err, "cannot load destination package")
	}
	if len(pkgs) != 1 {
		return errors.Errorf("expected one destination package in %s: actual %d", wd, len(pkgs))
	}

	destination := flags.Destination
	if !filepath.IsAbs(destination) {
		destination = filepath.Join(wd, destination)
	}

	g := newGenerator(pkgs[0], destination, newProxyNameFormatter(flags.ProxyNamePrefix, flags.ProxyNameSuffix))

	err = g.addProxiesWithPatterns(ctx, wd, flags.Interfaces)
	if err != nil {
		return err
	}

	return g.Generate(flags.goGenerate())
}

func (f Flags) goGenerate() string {
	args := []string{"//go:generate stubc", "--destination", f.Destination}
	if f.ProxyNamePrefix != defaultProxyNamePrefix {
		args = append(args, "--prefix", fmt.Sprintf("%q", f.ProxyNamePrefix))
	}
	if f.ProxyNameSuffix != defaultProxyNameSuffix {
		args = append(args, "--suffix", fmt.Sprintf("%q", f.ProxyNameSuffix))
	}

	interfaces := append([]string(nil), f.Interfaces...)
	sort.Strings(interfaces)
	args = append(args, interfaces...)

	return strings.Join(args, " ")
}
