// Package config resolves the scaffolder settings: the projects root, the
// generated file names, the placeholder token and an optional template
// override directory. Values come from defaults, an optional .newproject.yaml
// in the working directory, NEWPROJECT_* environment variables and command
// flags, in increasing priority. Config files are validated against an
// embedded JSON Schema before use.
package config
