package platform

// Package platform contains OS integration and file input: config and data
// paths, opening the project file in the system editor, and reading project
// files from YAML.
