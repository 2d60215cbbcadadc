package stubc

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

// markers are the stubc functions a generator function may call.
var markers = map[string]bool{
	"Implement":          true,
	"SetDestination":     true,
	"SetProxyNamePrefix": true,
	"SetProxyNameSuffix": true,
}

type parser struct {
	pkg *packages.Package
}

func newParser(pkg *packages.Package) *parser {
	return &parser{
		pkg: pkg,
	}
}

// Parse collects the generator functions of the package into one generator
// per destination file.
func (p *parser) Parse() ([]*generator, error) {
	destinationsAndGenerators := map[string]*generator{}
	for _, syntax := range p.pkg.Syntax {
		for _, decl := range syntax.Decls {
			fun, ok := decl.(*ast.FuncDecl)
			if !ok || fun.Body == nil {
				continue
			}

			calls, err := p.findStubcCalls(fun.Body.List)
			if err != nil {
				errorMessage := "cannot find stubc calls:"
				errorMessage += fmt.Sprintf("\n\tgenerator %q: %v", fun.Name.Name, err)

				return nil, errors.New(errorMessage)
			} else if len(calls) == 0 {
				continue
			}

			var (
				fileName        = p.pkg.Fset.File(decl.Pos()).Name()
				pkgDir          = filepath.Dir(fileName)
				destination     = defaultDestination
				proxyNamePrefix = defaultProxyNamePrefix
				proxyNameSuffix = defaultProxyNameSuffix
				interfaces      []types.Type
			)
			if strings.HasSuffix(fileName, "_test.go") {
				destination = defaultTestDestination
			}

			for _, call := range calls {
				sel := call.Fun.(*ast.SelectorExpr)

				obj := p.pkg.TypesInfo.ObjectOf(sel.Sel)
				switch obj.Name() {
				case "Implement":
					for _, arg := range call.Args {
						t := p.pkg.TypesInfo.TypeOf(arg)

						_, ok := t.Underlying().(*types.Interface)
						if !ok {
							errorMessage := "non-interface:"
							errorMessage += fmt.Sprintf("\n\tgenerator %q: %v", fun.Name.Name, t)

							return nil, errors.New(errorMessage)
						}

						interfaces = append(interfaces, t)
					}
				case "SetProxyNamePrefix":
					proxyNamePrefix, err = p.evalString(call.Args[0])
					if err != nil {
						errorMessage := "cannot set proxy name prefix:"
						errorMessage += fmt.Sprintf("\n\tgenerator %q: %v", fun.Name.Name, err)

						return nil, errors.New(errorMessage)
					}
				case "SetProxyNameSuffix":
					proxyNameSuffix, err = p.evalString(call.Args[0])
					if err != nil {
						errorMessage := "cannot set proxy name suffix:"
						errorMessage += fmt.Sprintf("\n\tgenerator %q: %v", fun.Name.Name, err)

						return nil, errors.New(errorMessage)
					}
				case "SetDestination":
					val, err := p.evalString(call.Args[0])
					if err != nil {
						errorMessage := "cannot set destination:"
						errorMessage += fmt.Sprintf("\n\tgenerator %q: %v", fun.Name.Name, err)

						return nil, errors.New(errorMessage)
					} else if val == "" {
						errorMessage := "cannot set destination:"
						errorMessage += fmt.Sprintf("\n\tgenerator %q: destination should not be an empty string", fun.Name.Name)

						return nil, errors.New(errorMessage)
					} else if filepath.Ext(val) != ".go" {
						errorMessage := "cannot set destination:"
						errorMessage += fmt.Sprintf("\n\tgenerator %q: %q is not a go file", fun.Name.Name, val)

						return nil, errors.New(errorMessage)
					}

					destination = val
				}
			}

			if proxyNamePrefix == "" && proxyNameSuffix == "" {
				errorMessage := "at least one of the proxy name prefix and proxy name suffix must not be an empty string:"
				errorMessage += fmt.Sprintf(
					"\n\tgenerator %q: prefix(%q) suffix(%q)", fun.Name.Name, proxyNamePrefix, proxyNameSuffix,
				)

				return nil, errors.New(errorMessage)
			}

			destination = filepath.Join(pkgDir, destination)
			if destinationsAndGenerators[destination] == nil {
				destinationsAndGenerators[destination] = newGenerator(
					p.pkg,
					destination,
					newProxyNameFormatter(proxyNamePrefix, proxyNameSuffix),
				)
			}

			g := destinationsAndGenerators[destination]
			g.nameProxy = newProxyNameFormatter(proxyNamePrefix, proxyNameSuffix)
			for _, t := range interfaces {
				err = g.addProxy(t)
				if err != nil {
					errorMessage := "cannot add proxy:"
					errorMessage += fmt.Sprintf("\n\tgenerator %q: %v", fun.Name.Name, err)

					return nil, errors.New(errorMessage)
				}
			}
		}
	}
	if len(destinationsAndGenerators) == 0 {
		return nil, nil
	}

	destinations := make([]string, 0, len(destinationsAndGenerators))
	for destination := range destinationsAndGenerators {
		destinations = append(destinations, destination)
	}
	sort.Strings(destinations)

	generators := make([]*generator, 0, len(destinations))
	for _, destination := range destinations {
		generators = append(generators, destinationsAndGenerators[destination])
	}

	return generators, nil
}

func (p *parser) evalString(arg ast.Expr) (string, error) {
	res, err := types.Eval(p.pkg.Fset, p.pkg.Types, arg.Pos(), types.ExprString(arg))
	if err != nil {
		return "", err
	}
	if res.Value == nil {
		return "", errors.Errorf("%s is not a constant", types.ExprString(arg))
	}

	return strconv.Unquote(res.Value.ExactString())
}

func (p *parser) findStubcCalls(stmts []ast.Stmt) ([]*ast.CallExpr, error) {
	var (
		calls   []*ast.CallExpr
		invalid bool
	)
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *ast.ExprStmt:
			call, ok := stmt.X.(*ast.CallExpr)
			if !ok {
				invalid = true
				continue
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				invalid = true
				continue
			}

			obj := p.pkg.TypesInfo.ObjectOf(sel.Sel)
			if obj != nil && obj.Pkg() != nil && obj.Pkg().Path() == stubcPath && markers[obj.Name()] {
				calls = append(calls, call)
			} else {
				invalid = true
			}
		case *ast.EmptyStmt, *ast.ReturnStmt:
		default:
			invalid = true
		}
	}

	if len(calls) == 0 {
		return nil, nil
	} else if invalid {
		return nil, errors.New("generator should consist of stubc function calls")
	}

	return calls, nil
}
