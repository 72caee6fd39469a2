// Package config loads jester's startup configuration.
//
// # Overview
//
// Configuration comes from three layers, each overriding the previous one:
//
//  1. Built-in defaults (see Default)
//  2. A TOML file, ~/.config/jester/config.toml unless a path is given
//  3. JESTER_* environment variables
//
// The merged result is validated before Load returns it. A missing config
// file is not an error; jester runs out of the box against the public
// JokeAPI endpoint.
//
// # TOML Format
//
//	api_url = "https://v2.jokeapi.dev"
//	default_category = "Programming"
//	blacklist_flags = ["nsfw", "religious", "political", "racist", "sexist", "explicit"]
//	request_timeout = "10s"
//	log_file = "~/.local/state/jester/jester.log"
//	log_level = "info"
//
// Every key is optional. Blank strings fall back to the default. An explicit
// empty blacklist_flags array disables filtering. request_timeout uses Go
// duration syntax; zero means no client-side timeout.
//
// # Environment
//
//   - JESTER_API_URL
//   - JESTER_DEFAULT_CATEGORY
//   - JESTER_BLACKLIST_FLAGS (comma separated)
//   - JESTER_REQUEST_TIMEOUT
//   - JESTER_LOG_FILE
//   - JESTER_LOG_LEVEL
//
// # Validation
//
// api_url must be an http or https URL, default_category one of the six
// JokeAPI categories (matched case-insensitively), log_level a zerolog level
// name and request_timeout non-negative. Failures are reported as
// *ValidationError carrying the TOML key that failed.
package config
