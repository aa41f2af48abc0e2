// Package cli provides the interactive BlogNest command-line client.
//
// It wires configuration, the session store, the API gateway, and an
// interactive REPL. Typical flow: restore the saved session, then
// execute user commands against the backend.
//
// Key features:
//   - Login / Signup with 6-digit email verification
//   - Google-assisted sign-in
//   - Forgot / reset password
//   - Browse and search the public blog feed
//   - Create, publish, update, and delete own posts
//
// The REPL is started via App.Root(ctx), which blocks until the user
// exits. See App and runREPL for details.
package cli
