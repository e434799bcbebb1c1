// Package config provides the YAML configuration of corresponding-generator.
//
// The file is optional; every value has a default and the CLI flags take
// precedence over it.
//
//	version: "1"
//	optional_wrapper: Option          # identifier of the optional wrapper type
//	default_marker: corresponding:default
//	output: corresponding_gen.go      # file written into each scope directory
//	comments: false                   # annotate each field action with its policy
//	scopes:
//	  - package: ./models
//	    exclude: [legacyRow]          # a single name or a list
//	  - package: ./api/...
package config
