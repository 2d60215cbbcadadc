package stubc

// The functions below are directives for the stubc command. They do nothing
// at run time; a generator function calls them from a file built only with
// the stubc tag:
//
//	//go:build stubc
//
//	func proxies() {
//		stubc.Implement(Cache(nil), Store(nil))
//		stubc.SetDestination("proxies_gen.go")
//	}

// Implement designates the interfaces to generate proxies for.
func Implement(...interface{}) {}

// SetDestination sets the file the proxies are written to, relative to the
// generator function's package.
func SetDestination(string) {}

// SetProxyNamePrefix sets the prefix of the generated proxy type names.
func SetProxyNamePrefix(string) {}

// SetProxyNameSuffix sets the suffix of the generated proxy type names.
func SetProxyNameSuffix(string) {}
