// Package config holds the aidiff configuration and its merge logic.
//
// The effective config is built once at startup: defaults, then the JSON
// config file (XDG-aware location), then environment variables
// (GITHUB_TOKEN / GH_TOKEN for the bearer token, GITHUB_API_URL for the API
// base), then CLI flag overrides. The token is never written to the config
// file.
package config
