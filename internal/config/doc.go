// Package config provides configuration loading, merging, and validation
// for the admin panel and the gateway.
//
// Configuration is assembled from several sources; later sources override
// non-zero fields of earlier ones:
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c/-config)
//
// The entry points are [GetAdminConfig] and [GetGatewayConfig]; both start
// from [GetStructuredConfig] and validate the view their binary needs.
package config
