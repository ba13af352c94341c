// Package clients persists vault owners.
//
// A Repository reads and writes the clients table; SQLiteRepository is the
// only implementation and runs over a dbx.DBTX, so it works against a plain
// *sql.DB or inside dbx.WithTx.
//
// Usernames are unique in the schema. FindByUsername still returns every
// matching row so callers can detect a broken uniqueness invariant instead of
// silently taking the first match.
package clients
