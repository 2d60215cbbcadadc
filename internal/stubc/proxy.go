package stubc

import (
	"fmt"
	"go/types"
	"sort"
)

type proxyInfo struct {
	Name      string
	Interface types.Type
	Methods   []methodInfo
}

type methodInfo struct {
	Name    string
	Params  []paramInfo
	Results []resultInfo
}

type paramInfo struct {
	Name       string
	Type       types.Type
	IsVariadic bool
}

type resultInfo struct {
	Name string
	Type types.Type
}

func newProxyInfo(name string, t types.Type, inter *types.Interface) proxyInfo {
	proxy := proxyInfo{
		Name:      name,
		Interface: t,
		Methods:   make([]methodInfo, 0, inter.NumMethods()),
	}

	for i := 0; i < inter.NumMethods(); i++ {
		fun := inter.Method(i)
		sig := fun.Type().(*types.Signature)

		method := methodInfo{
			Name:    fun.Name(),
			Params:  make([]paramInfo, 0, sig.Params().Len()),
			Results: make([]resultInfo, 0, sig.Results().Len()),
		}

		for j := 0; j < sig.Params().Len(); j++ {
			method.Params = append(method.Params, paramInfo{
				Name:       fmt.Sprintf("p%d", j),
				Type:       sig.Params().At(j).Type(),
				IsVariadic: j+1 == sig.Params().Len() && sig.Variadic(),
			})
		}

		for j := 0; j < sig.Results().Len(); j++ {
			method.Results = append(method.Results, resultInfo{
				Name: fmt.Sprintf("r%d", j),
				Type: sig.Results().At(j).Type(),
			})
		}

		proxy.Methods = append(proxy.Methods, method)
	}

	sort.Slice(proxy.Methods, func(i, j int) bool {
		return proxy.Methods[i].Name < proxy.Methods[j].Name
	})

	return proxy
}

func newProxyNameFormatter(prefix, suffix string) func(string) string {
	return func(name string) string {
		return prefix + name + suffix
	}
}
