//go:build stubc

package basic

import (
	"github.com/KimMachineGun/stubc"
)

func Proxies() {
	stubc.SetDestination("proxies_gen.go")
	stubc.SetProxyNamePrefix("fake")
	stubc.SetProxyNameSuffix("Proxy")
	stubc.Implement(Cache(nil))
}

func SuffixedProxies() {
	stubc.SetProxyNamePrefix("")
	stubc.SetProxyNameSuffix("Stub")
	stubc.Implement(Cache(nil))
}
