// Package config holds the compiled-in settings of the dashboard generator
// and the few values read from the process environment.
package config

import "os"

const (
	// Organization is the GitHub organization the dashboard reports on.
	Organization = "mage-os"

	// DefaultGraphQLURL is the public GitHub GraphQL endpoint.
	DefaultGraphQLURL = "https://api.github.com/graphql"

	// OutputDir is created relative to the working directory when absent.
	OutputDir  = "dist"
	OutputFile = "index.html"
)

// Config holds the settings for a single run.
type Config struct {
	Organization string
	Token        string
	GraphQLURL   string
	OutputDir    string
	OutputFile   string
}

// Load builds the run configuration. GITHUB_TOKEN is forwarded as-is; an
// unset token is not rejected here and surfaces as an authorization error
// from the API. GITHUB_GRAPHQL_URL overrides the endpoint for GitHub
// Enterprise installations.
func Load() *Config {
	return &Config{
		Organization: Organization,
		Token:        os.Getenv("GITHUB_TOKEN"),
		GraphQLURL:   getEnvOrDefault("GITHUB_GRAPHQL_URL", DefaultGraphQLURL),
		OutputDir:    OutputDir,
		OutputFile:   OutputFile,
	}
}

// HasToken reports whether a credential was supplied.
func (c *Config) HasToken() bool {
	return c.Token != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
