// Package config provides configuration loading, merging, and validation
// for the ether-notes client and gateway.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables (.env.local and .env are loaded first)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] for the terminal client and
// [GetGatewayConfig] for the read-only notes gateway.
package config
