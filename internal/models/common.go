package models

import "time"

// AuditFields mirrors the created_at / updated_at columns shared by mutable tables.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
