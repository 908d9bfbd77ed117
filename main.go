// Package main is the entry point for the pipguard CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The pipguard tool inventories the
// packages installed in a pip environment, flags deprecated or risky
// versions against a static policy, and offers simple remediation commands.
package main

import "github.com/pipguard/pipguard/cmd"

// main initializes and runs the pipguard CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles subcommands like scan, list, policy, and upgrade.
func main() {
	cmd.Execute()
}
