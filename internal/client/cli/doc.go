// Package cli is the interactive command-line client of the social backend.
//
// NewRootCommand builds the cobra command tree. Without a subcommand the
// App runs a REPL: register, login, browse the feed, post, like, comment and
// edit the profile. The version, whoami, feed and logout subcommands run once
// and exit.
//
// The App wires configuration, the credential store selected by config, the
// authenticated API client and the REST services. When the client reports an
// expired session the App drops back to the logged-out state and asks the
// user to log in again.
package cli
