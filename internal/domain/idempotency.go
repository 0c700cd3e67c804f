package domain

import "time"

// Idempotency records the response produced for an Idempotency-Key so that a
// retried request can be answered from the record instead of re-running side
// effects (such as a second AI completion). Records are keyed by
// (user_id, scope, key) where scope identifies the route and target resource.
type Idempotency struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null;uniqueIndex:ux_idem_user_scope_key,priority:1"`
	Scope     string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_idem_user_scope_key,priority:2"`
	Key       string    `gorm:"type:varchar(200);not null;uniqueIndex:ux_idem_user_scope_key,priority:3"`
	Status    int       `gorm:"not null"`
	Body      []byte    `gorm:"type:blob"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }

// Expired reports whether the record is no longer replayable at now.
func (i Idempotency) Expired(now time.Time) bool { return !now.Before(i.ExpiresAt) }
