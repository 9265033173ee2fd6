// Package domain contains the core booking model for staybook.
//
// The domain is persistence- and console-agnostic: it does not depend on CSV
// encoding, YAML parsing, or the filesystem. Infra/adapters map into/from these types.
package domain
