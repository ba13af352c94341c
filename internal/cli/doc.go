// Package cli implements the interactive passvault menu.
//
// The menu is a line-oriented loop over an io.Reader and io.Writer:
//
//	Username
//	> alice
//	Enter password:
//	1. Add New Entry
//	2. View All Entries
//	3. Edit an Entry
//	4. Delete an Entry
//	5. Log out
//	6. Exit
//	> _
//
// Until a client is logged in only the login prompt is shown. Every vault
// action is scoped to the client held by the session.
package cli
