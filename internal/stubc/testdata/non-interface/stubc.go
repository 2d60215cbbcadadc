//go:build stubc

package basic

import (
	"github.com/KimMachineGun/stubc"
)

type Point struct {
	X, Y int
}

func Proxies() {
	stubc.Implement(Point{})
}
