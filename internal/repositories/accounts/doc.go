// Package accounts persists the third-party credentials stored in the vault.
//
// Every query is scoped by the owning client id: Insert writes the owner into
// client_id and ListByClient filters on it, so one client's rows are never
// returned for another.
package accounts
