package domain

import "time"

// AuditFields holds the timestamps shared by mutable entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
