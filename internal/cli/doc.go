// Package cli defines the Cobra command for newproject. Its single argument
// is always a project name; --list, --doctor and --version are read-only
// helpers selected by flag. Commands only handle flags, argument checks and
// output; the work is done by the scaffold, registry, config and toolchain
// packages.
package cli
