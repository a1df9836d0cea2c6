// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after it
// unmarshals the merged Koanf tree into a `Config` instance.  Any tag
// mismatch or validation error aborts startup, ensuring the binary never
// runs with partial, malformed, or missing configuration.
//
// Tag rules cover the scalar fields (`required`, `hostname_port`); the
// cross-field rules that tags cannot express — the fallback tenant and
// the directory entries — are checked by hand below.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.
//   • Section dividers use the simple comment style requested.

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	if err := v.Struct(c); err != nil {
		return err
	}

	if c.Directory.Fallback.TenantID == "" {
		return fmt.Errorf("config: directory.fallback.tenant_id is required")
	}
	for i, e := range c.Directory.Entries {
		if e.Host == "" || e.TenantID == "" {
			return fmt.Errorf("config: directory.entries[%d] needs both host and tenant_id", i)
		}
	}
	return nil
}
