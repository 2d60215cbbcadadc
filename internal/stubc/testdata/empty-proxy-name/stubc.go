//go:build stubc

package basic

import (
	"github.com/KimMachineGun/stubc"
)

func Proxies() {
	stubc.Implement(Cache(nil))
	stubc.SetProxyNamePrefix("")
}
