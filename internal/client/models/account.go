// Package models defines the records persisted by devprofiler: accounts,
// devices and the field sets used to create and change devices.
package models

import "time"

// Account is a registered user. Password is kept as entered.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns an independent copy, used for session snapshots.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
