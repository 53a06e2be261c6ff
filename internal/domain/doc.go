// Package domain contains the core domain model for pnladl.
//
// The domain is transport- and persistence-agnostic: it does not depend on the
// PNL wire format, JSON/YAML encodings, or the filesystem. The pnl package and
// the infra adapters map into/from these types.
package domain
