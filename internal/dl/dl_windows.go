//go:build windows

package dl

import (
	"fmt"
	"syscall"
	"unsafe"
)

// RTLD flags are meaningless on Windows but defined so callers compile
// unchanged.
const (
	RTLD_NOW    = 0
	RTLD_GLOBAL = 0
)

var (
	kernel32       = syscall.NewLazyDLL("kernel32.dll")
	loadLibraryW   = kernel32.NewProc("LoadLibraryW")
	getProcAddress = kernel32.NewProc("GetProcAddress")
	freeLibrary    = kernel32.NewProc("FreeLibrary")
)

// Open loads the shared library at path and returns its handle.
func Open(path string, flags int) (uintptr, error) {
	pathPtr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	handle, _, callErr := loadLibraryW.Call(uintptr(unsafe.Pointer(pathPtr)))
	if handle == 0 {
		return 0, fmt.Errorf("LoadLibrary failed: %w", callErr)
	}
	return handle, nil
}

// Sym resolves an exported symbol by name.
func Sym(handle uintptr, name string) (uintptr, error) {
	namePtr, err := syscall.BytePtrFromString(name)
	if err != nil {
		return 0, err
	}
	addr, _, callErr := getProcAddress.Call(handle, uintptr(unsafe.Pointer(namePtr)))
	if addr == 0 {
		return 0, fmt.Errorf("GetProcAddress(%s) failed: %w", name, callErr)
	}
	return addr, nil
}

// Close unloads the library.
func Close(handle uintptr) error {
	ret, _, callErr := freeLibrary.Call(handle)
	if ret == 0 {
		return fmt.Errorf("FreeLibrary failed: %w", callErr)
	}
	return nil
}
