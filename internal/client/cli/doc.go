// Package cli provides the devprofiler command line.
//
// The root command loads configuration and a logger, then each subcommand
// opens the local store, restores the saved session and drives the
// controller. Results are printed as colored notifications.
//
// Commands:
//   - register / login / logout / whoami
//   - list, add, edit <id>, delete <id>
//   - shell: an interactive REPL over the same operations
//   - serve: the local JSON API
//   - version
//
// add and edit prompt for every field unless device flags are given; delete
// asks for confirmation unless --yes is set.
package cli
