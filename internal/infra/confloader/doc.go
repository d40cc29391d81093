// Package confloader provides configuration loading mechanism.
//
// It wraps koanf. Sources are merged in call order, so callers load the
// lowest-priority source first:
//
//  1. Configuration files (YAML, or one of the line formats in parsers.go)
//  2. Environment variables (IOTLAB_ prefix)
//  3. Command-line flags, passed in as a map
package confloader
