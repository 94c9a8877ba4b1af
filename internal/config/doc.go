// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional taskpad.yaml file. It provides
// type-safe access to settings for the API server and the terminal client
// while keeping configuration details separate from business logic.
package config
