//go:build stubc

package basic

import (
	"github.com/KimMachineGun/stubc"
)

func proxies() {
	stubc.Implement(Cache(nil))
}
