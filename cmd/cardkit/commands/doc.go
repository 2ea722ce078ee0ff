// Package commands wires the cardkit CLI subcommands.
package commands
