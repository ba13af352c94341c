// Package models defines the vault's data types: clients (the authenticated
// principals) and the accounts they own.
package models

import "strconv"

// ClientID identifies a client row. It is assigned by the store.
type ClientID uint64

func (id ClientID) String() string { return strconv.FormatUint(uint64(id), 10) }

// AccountID identifies an account row. It is assigned by the store on insert.
type AccountID uint64

func (id AccountID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Client is a vault owner. Password holds the encoded password hash, never
// the plain text.
type Client struct {
	ID       ClientID
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// AccountDraft is an account that has not been persisted yet.
type AccountDraft struct {
	Name     string `validate:"required"`
	Username string `validate:"required"`
	Password string
}

// Account is a persisted third-party credential owned by exactly one client.
type Account struct {
	ID       AccountID
	ClientID ClientID
	Name     string
	Username string
	Password string
}

// Draft returns the account's fields without its identity.
func (a Account) Draft() AccountDraft {
	return AccountDraft{Name: a.Name, Username: a.Username, Password: a.Password}
}
