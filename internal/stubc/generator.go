package stubc

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

type generator struct {
	pkg       *packages.Package
	path      string
	nameProxy func(string) string
	names     map[string]bool
	proxies   []proxyInfo
}

func newGenerator(pkg *packages.Package, path string, nameProxy func(string) string) *generator {
	return &generator{
		pkg:       pkg,
		path:      path,
		nameProxy: nameProxy,
		names:     map[string]bool{},
	}
}

// Generate writes the proxies to the generator's destination file.
func (g *generator) Generate(gogenerate string) error {
	if len(g.proxies) == 0 {
		return nil
	}

	b := bytes.NewBuffer(nil)

	err := g.file(gogenerate).Render(b)
	if err != nil {
		return errors.Wrap(err, "cannot render stubc generated code")
	}

	err = os.WriteFile(g.path, b.Bytes(), 0o644)
	if err != nil {
		return errors.Wrapf(err, "cannot write %s", g.path)
	}

	log.Println("generated:", g.path)

	return nil
}

func (g *generator) file(gogenerate string) *jen.File {
	f := jen.NewFilePathName(g.pkg.PkgPath, g.pkg.Name)
	f.HeaderComment("Code generated by stubc. DO NOT EDIT.")
	f.HeaderComment("//go:build !" + buildTag)
	f.PackageComment(gogenerate)
	f.ImportName(stubcPath, "stubc")

	registrations := make([]jen.Code, 0, len(g.proxies))
	for _, proxy := range g.proxies {
		registrations = append(registrations, jen.Qual(stubcPath, "Register").Call(
			jen.Func().Params(jen.Id("d").Qual(stubcPath, "Dispatcher")).Add(typeCode(proxy.Interface)).Block(
				jen.Return(jen.Op("&").Id(proxy.Name).Values(jen.Id("d").Op(":").Id("d"))),
			),
		))
	}
	f.Func().Id("init").Params().Block(registrations...)

	for _, proxy := range g.proxies {
		f.Line()
		f.Commentf("%s forwards every call to its stubc.Dispatcher.", proxy.Name)
		f.Type().Id(proxy.Name).Struct(
			jen.Id("d").Qual(stubcPath, "Dispatcher"),
		)

		for _, method := range proxy.Methods {
			f.Line()
			f.Add(methodCode(proxy, method))
		}
	}

	return f
}

func methodCode(proxy proxyInfo, method methodInfo) *jen.Statement {
	params := make([]jen.Code, 0, len(method.Params))
	args := make([]jen.Code, 0, len(method.Params)+1)
	args = append(args, jen.Lit(method.Name))
	for _, p := range method.Params {
		if p.IsVariadic {
			params = append(params, jen.Id(p.Name).Op("...").Add(typeCode(p.Type.(*types.Slice).Elem())))
		} else {
			params = append(params, jen.Id(p.Name).Add(typeCode(p.Type)))
		}
		args = append(args, jen.Id(p.Name))
	}

	dispatch := jen.Id("recv").Dot("d").Dot("Dispatch").Call(args...)

	var results *jen.Statement
	switch len(method.Results) {
	case 0:
		return jen.Func().Params(jen.Id("recv").Op("*").Id(proxy.Name)).Id(method.Name).Params(params...).Block(dispatch)
	case 1:
		results = typeCode(method.Results[0].Type)
	default:
		resultTypes := make([]jen.Code, 0, len(method.Results))
		for _, r := range method.Results {
			resultTypes = append(resultTypes, typeCode(r.Type))
		}
		results = jen.Params(resultTypes...)
	}

	body := make([]jen.Code, 0, len(method.Results)+2)
	body = append(body, jen.Id("rs").Op(":=").Add(dispatch))

	names := make([]jen.Code, 0, len(method.Results))
	for i, r := range method.Results {
		body = append(body, jen.List(jen.Id(r.Name), jen.Id("_")).Op(":=").Id("rs").Index(jen.Lit(i)).Assert(typeCode(r.Type)))
		names = append(names, jen.Id(r.Name))
	}
	body = append(body, jen.Return(names...))

	return jen.Func().Params(jen.Id("recv").Op("*").Id(proxy.Name)).Id(method.Name).Params(params...).Add(results).Block(body...)
}

func (g *generator) addProxy(t types.Type) error {
	named, ok := t.(interface{ Obj() *types.TypeName })
	if !ok {
		return errors.Errorf("unnamed interface %v", t)
	}

	inter, ok := t.Underlying().(*types.Interface)
	if !ok {
		return errors.Errorf("non-interface %v", t)
	}

	obj := named.Obj()
	if err := validateInterface(inter, obj.Pkg() != nil && obj.Pkg().Path() != g.pkg.PkgPath); err != nil {
		return err
	}

	name := g.nameProxy(obj.Name())
	if g.names[name] {
		return errors.Errorf("duplicated proxy name %q", name)
	}
	if g.pkg.Types.Scope().Lookup(name) != nil {
		return errors.Errorf("proxy name %q is already declared in package %q", name, g.pkg.PkgPath)
	}

	g.names[name] = true
	g.proxies = append(g.proxies, newProxyInfo(name, t, inter))

	return nil
}

func (g *generator) addProxiesWithPatterns(ctx context.Context, wd string, interfacePatterns []string) error {
	targetInterfaces := map[string][]string{}
	for _, inter := range interfacePatterns {
		idx := strings.LastIndex(inter, ".")
		if idx == -1 {
			errorMessage := "invalid interface pattern:"
			errorMessage += fmt.Sprintf("\n\texpected interface pattern {package-path}.{interface-name}: actual %s", inter)

			return errors.New(errorMessage)
		}

		pkgPath, interfaceName := inter[:idx], inter[idx+1:]
		if pkgPath == "" || interfaceName == "" {
			errorMessage := "invalid interface pattern:"
			errorMessage += fmt.Sprintf("\n\texpected interface pattern {package-path}.{interface-name}: actual %s", inter)

			return errors.New(errorMessage)
		}

		targetInterfaces[pkgPath] = append(targetInterfaces[pkgPath], interfaceName)
	}

	patterns := make([]string, 0, len(targetInterfaces))
	for pkgPath := range targetInterfaces {
		patterns = append(patterns, pkgPath)
	}
	sort.Strings(patterns)

	pkgs, err := loadPackages(ctx, wd, patterns, false)
	if err != nil {
		return errors.Wrap(err, "cannot load packages")
	}

	for _, pkg := range pkgs {
		interfaceNames := targetInterfaces[pkg.PkgPath]
		if len(interfaceNames) == 0 {
			continue
		}

		f := newInterfaceFinder(pkg, interfaceNames)
		for _, syntax := range pkg.Syntax {
			ast.Walk(f, syntax)
		}

		for _, interfaceName := range interfaceNames {
			t, ok := f.result[interfaceName]
			if !ok {
				return errors.Errorf("package %q: cannot load interface: %s", pkg.PkgPath, interfaceName)
			}

			err = g.addProxy(t)
			if err != nil {
				return errors.Wrapf(err, "package %q: invalid interface", pkg.PkgPath)
			}
		}
	}

	return nil
}
