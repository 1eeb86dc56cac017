// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file and from the environment,
// validated, and handed to the rest of the application as plain structs.
// The PORT variable used by container platforms always wins over the file.
package config
