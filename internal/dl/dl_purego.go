//go:build !windows

// Package dl wraps the platform dynamic loader behind one small API so
// the core loader does not care whether symbols come from dlopen or
// LoadLibrary.
package dl

import "github.com/ebitengine/purego"

// RTLD flags for Open, re-exported from purego.
const (
	RTLD_NOW    = purego.RTLD_NOW
	RTLD_GLOBAL = purego.RTLD_GLOBAL
)

// Open loads the shared library at path and returns its handle.
func Open(path string, flags int) (uintptr, error) {
	return purego.Dlopen(path, flags)
}

// Sym resolves an exported symbol by name.
func Sym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

// Close unloads the library.
func Close(handle uintptr) error {
	return purego.Dlclose(handle)
}
