// Package version contains the build version of odsgen.
package version

import "runtime"

// Version is the canonical release version. Overridable at link time with
// -ldflags "-X github.com/aerissecure/odsgen/version.Version=...".
var Version = "1.0.0"

// GoVersion is the toolchain the binary was built with.
var GoVersion = runtime.Version()
