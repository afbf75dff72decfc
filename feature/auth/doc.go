// Package auth provides user registration and login for the gateway.
//
// Accounts live in the relational database alongside the activity log;
// passwords are stored as bcrypt hashes. The feature disables itself when
// no database connection was established at startup, leaving the rest of
// the gateway fully functional.
package auth
