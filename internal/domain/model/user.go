package model

import "time"

// Role describes the access level of a platform account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User represents a platform account. Accounts are never hard-deleted;
// Points carries the cached loyalty balance maintained by the ledger.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	FullName     string
	Email        string
	Points       int64
	CreatedAt    time.Time
}
