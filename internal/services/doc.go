// Package services contains the vault's business logic.
//
//   - AuthService verifies a username/password pair and yields a client id.
//   - ClientService registers clients (the seed/admin path).
//   - AccountService stores and lists accounts scoped to one client.
//
// Services never print and never retry. Failures are returned as the
// sentinel errors of package common, wrapped around their cause, so callers
// can branch with errors.Is and re-prompt where that makes sense.
package services
