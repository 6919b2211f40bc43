// Package nativecore loads an independently compiled core shared
// library and surfaces its exported entry points as the same tables an
// in-process core provides. It is the concrete consumer of the function
// resolution handshake across a real binary boundary: the frontend
// resolves the core's exports by symbol name, then hands the core a
// resolver callback through which the core binds the frontend's entry
// points.
package nativecore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvCorePath names the environment variable overriding the core search.
// It may point at the library file itself or at a directory to search.
const EnvCorePath = "HYDRA_CORE_PATH"

var (
	// ErrCoreNotFound is returned when no core library can be located.
	ErrCoreNotFound = errors.New("core library not found")

	// ErrCoreClosed is returned by Close on an already closed core.
	// Entry points called after Close answer the not-initialized result
	// instead of jumping into unmapped code.
	ErrCoreClosed = errors.New("core library closed")
)

// Find locates a core library by base name, e.g. "chip8" finds
// libchip8.so, chip8.dll or libchip8.dylib depending on the platform. It
// searches the EnvCorePath override, the executable's directory, the
// working directory and their cores/ subdirectories, in that order.
func Find(name string) (string, error) {
	libName := libraryName(name, runtime.GOOS)

	var searchPaths []string
	if env := os.Getenv(EnvCorePath); env != "" {
		if fi, err := os.Stat(env); err == nil {
			if !fi.IsDir() {
				return env, nil
			}
			searchPaths = append(searchPaths, filepath.Join(env, libName))
		}
	}

	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "cores", libName),
		)
	}
	if wd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths,
			filepath.Join(wd, libName),
			filepath.Join(wd, "cores", libName),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			abs, err := filepath.Abs(path)
			if err != nil {
				return path, nil
			}
			return abs, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %d paths)", ErrCoreNotFound, libName, len(searchPaths))
}

func libraryName(name, goos string) string {
	switch goos {
	case "windows":
		return name + ".dll"
	case "darwin":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}
