// Package registry maintains the aggregator build file (projects/CMakeLists.txt)
// that includes every subproject. New projects are registered by appending an
// add_subdirectory line; the file is never rewritten.
package registry
