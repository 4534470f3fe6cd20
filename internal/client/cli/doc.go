// Package cli provides the interactive bookings command-line client.
//
// Commands: register, login, history, book, logout, help, exit. Passwords
// are read without echo and the session token lives in memory only.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
