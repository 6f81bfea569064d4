// Package cli provides the interactive blogview command-line client.
//
// It wires configuration, the local sqlite record store, the session and
// post stores, the remote post resource client, and an interactive REPL.
// Typical flow: restore the persisted session and theme, start the REPL,
// and execute user commands against the in-memory stores.
//
// Key features:
//   - Login / Register / Logout with a locally issued session token
//   - List / View posts fetched from the remote resource
//   - Create / Edit / Delete posts (write access requires a session)
//   - Search and tag filtering over the loaded list
//   - Light/dark theme toggle persisted across restarts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
