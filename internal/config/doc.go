// Package config loads easel's TOML configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/easel/config.toml
//  3. If the file doesn't exist, use defaults
//  4. If the file exists but a field is missing or blank, use that field's default
//
// # Default Values
//
//   - api_url: https://api.artic.edu/api/v1/artworks
//   - page_size: 0 (let the server choose, 12 for the public API)
//   - request_timeout: 10s
//   - retries: 3 attempts per page fetch
//   - log_file: ~/.local/share/easel/easel.log
//   - log_level: info
//
// # TOML Format
//
//	api_url = "https://api.artic.edu/api/v1/artworks"
//	page_size = 24
//	request_timeout = "5s"
//	retries = 3
//	log_file = "~/.local/share/easel/easel.log"
//	log_level = "debug"
//
// Tilde expansion is performed on log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than a
// missing file, invalid TOML, unparseable or non-positive request_timeout and
// page_size outside [0, 100]. Missing config files are not an error.
package config
