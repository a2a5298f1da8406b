// Package repo contains the storage adapters behind the ports.Repository
// contract: hand-written pgx stores for Postgres and a generic in-memory
// store used by tests and database-less runs. Both honor the same
// semantics: absence as a nil value, uniqueness violations as Validation
// errors naming the field, anything else wrapped as a system fault.
package repo
