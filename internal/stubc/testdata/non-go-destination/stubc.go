//go:build stubc

package basic

import (
	"github.com/KimMachineGun/stubc"
)

const destination = "proxies.txt"

func Proxies() {
	stubc.SetDestination(destination)
	stubc.Implement(Cache(nil))
}
