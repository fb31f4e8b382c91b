// Package scaffold creates new subprojects under the projects root. A project
// is a directory holding a build file rendered from a template (every
// placeholder token replaced with the project name) and a fixed entry-point
// source file, registered by appending one line to the aggregator build file.
//
// The steps run in order with no rollback: a failure after the directory was
// created leaves it in place and unregistered.
package scaffold
