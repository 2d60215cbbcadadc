//go:build stubc

package stubc_test

import (
	"github.com/KimMachineGun/stubc"
)

func proxies() {
	stubc.Implement(
		ScalarFunctions(nil),
		DefaultConstructibleFunctions(nil),
		NonDefaultConstructibleFunctions(nil),
		ReferenceFunctions(nil),
		UnionFunctions(nil),
		SomeInterface(nil),
		Store(nil),
		Counter(nil),
	)
}
