// Package toolchain inspects the build tool a generated project depends on.
// It reads the minimum CMake version a build template declares and compares
// it against the cmake binary found on PATH.
package toolchain
