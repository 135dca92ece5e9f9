// Package demangle is the public entry point for turning mangled Microsoft
// Visual C++ symbol names into C++ declarations. It is a thin re-export over
// the internal parser/printer so that internal package layout can change
// without breaking callers.
package demangle

import (
	msdemangle "github.com/Saeed-Rezaee/msvc-demangler/internal/msdemangle"
)

// Demangle converts a mangled MSVC symbol into its C++ declaration. If name
// does not begin with '?' it is treated as an already-plain identifier and
// returned unchanged. A malformed mangled name is reported as an error whose
// underlying sentinel can be inspected with errors.Is/errors.As.
func Demangle(name string) (string, error) {
	return msdemangle.Demangle(name)
}

// TryDemangle attempts to demangle name, returning the original string and
// false if Demangle reports an error for it. A name that does not begin with
// '?' is returned unchanged with true, as Demangle does.
func TryDemangle(name string) (string, bool) {
	decl, err := msdemangle.Demangle(name)
	if err != nil {
		return name, false
	}
	return decl, true
}
