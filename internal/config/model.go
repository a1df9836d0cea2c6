// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                            – dotenv values,
//   • `conf/global.yaml`                         – primary static file,
//   • `PORTFOLIO_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import (
	"github.com/jatinPrakash2720/portfolio-hub/internal/directory"
	"github.com/jatinPrakash2720/portfolio-hub/internal/hostparse"
)

//
// HTTP section
//

// HTTP holds web-server tunables.  Zero timeouts fall back to the
// defaults in internal/server; the write timeout must stay comfortably
// above the contact pipeline's delivery-status poll.
type HTTP struct {
	ListenAddr       string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS       bool   `koanf:"force_https"`
	ReadTimeoutSecs  int    `koanf:"read_timeout_seconds"`
	WriteTimeoutSecs int    `koanf:"write_timeout_seconds"`
	IdleTimeoutSecs  int    `koanf:"idle_timeout_seconds"`
}

//
// Database section
//

// Database holds the MySQL DSN and pool bounds.  The password portion of
// the DSN is expected to arrive via the env overlay
// (PORTFOLIO_DATABASE__DSN), keeping credentials out of flat files and
// git history.
type Database struct {
	DSN     string `koanf:"dsn" validate:"required"`
	MaxOpen int    `koanf:"max_open"`
	MaxIdle int    `koanf:"max_idle"`
}

//
// Redis section
//

// Redis configures the shared response cache.  An empty Addr disables
// Redis, and the cache degrades to an in-process LRU.
type Redis struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

//
// Host section
//

// Host carries the subdomain-recognition rules.  Empty fields fall back
// to the package defaults ("localhost", "portfolio").
type Host struct {
	DevMarker    string `koanf:"dev_marker"`
	ProductLabel string `koanf:"product_label"`
}

// Rules converts the section into hostparse rules, applying defaults for
// absent fields.
func (h Host) Rules() hostparse.Rules {
	ru := hostparse.Default()
	if h.DevMarker != "" {
		ru.DevMarker = h.DevMarker
	}
	if h.ProductLabel != "" {
		ru.ProductLabel = h.ProductLabel
	}
	return ru
}

//
// Directory section
//

// DirectoryConf lists the curated host-to-tenant entries plus the
// fallback tenant served for unrecognized hosts.
type DirectoryConf struct {
	Entries  []directory.Entry `koanf:"entries"`
	Fallback directory.Entry   `koanf:"fallback"`
}

//
// Mail section
//

// Mail configures the Resend client.  An empty APIKey disables outbound
// email; the contact endpoint then persists submissions without sending.
type Mail struct {
	APIKey     string `koanf:"api_key"`
	From       string `koanf:"from"`
	OwnerEmail string `koanf:"owner_email"`
}

//
// Verify section
//

// Verify configures the ZeroBounce deliverability check.  An empty
// APIKey means every address is treated as deliverable (fail open).
type Verify struct {
	ZeroBounceKey string `koanf:"zerobounce_key"`
}

//
// Cache section
//

// Cache holds TTLs and sizes for the response cache and tenant cache.
// Zero values fall back to package defaults.
type Cache struct {
	APITTLSeconds  int `koanf:"api_ttl_seconds"`
	LRUCapacity    int `koanf:"lru_capacity"`
	TenantIdleMins int `koanf:"tenant_idle_minutes"`
	TenantMax      int `koanf:"tenant_max_entries"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or PORTFOLIO_ROOT override) so later code
// can build absolute file paths.
type Paths struct {
	Root string // PORTFOLIO_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP      HTTP          `koanf:"http"`
	Database  Database      `koanf:"database"`
	Redis     Redis         `koanf:"redis"`
	Host      Host          `koanf:"host"`
	Directory DirectoryConf `koanf:"directory"`
	Mail      Mail          `koanf:"mail"`
	Verify    Verify        `koanf:"verify"`
	Cache     Cache         `koanf:"cache"`
	Paths     Paths         `koanf:"-"` // not loaded from config files
}
