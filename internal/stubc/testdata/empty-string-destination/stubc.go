//go:build stubc

package basic

import (
	"github.com/KimMachineGun/stubc"
)

func Proxies() {
	stubc.SetDestination("")
	stubc.Implement(Cache(nil))
}
