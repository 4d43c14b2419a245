// Package cli provides the interactive shop command-line client.
//
// It wires configuration, session storage, the API client and the auth
// service into a REPL. At startup a stored session is verified against the
// server once; a rejected session is dropped before the first prompt.
//
// Commands:
//   - register, login, logout
//   - whoami (cached session), profile (fresh from the server)
//   - update-profile, passwd, deactivate
//   - help, exit | quit
//
// The prompt shows the signed-in user and whether the last request reached
// the server. When Config.MetricsAddr is set, request metrics are served at
// /metrics for the lifetime of the REPL.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
