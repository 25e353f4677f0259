// Package config loads and validates the generator's YAML
// configuration.
//
// DESIGN
//
//   - One YAML file describes everything: source paths, source column
//     names, output locations, drafting, and run history.
//   - Defaults first, file second. Default() is a complete working
//     configuration (Romanian source headers, output under the user's
//     Documents folder); the file only overrides what it names.
//   - The merged configuration is checked against an embedded CUE
//     schema before anything runs, so a typo'd key or an empty source
//     path fails with a schema position instead of a downstream error.
package config
