// Package app wires application dependencies for the CLI.
//
// It reads Config from viper, builds the random source, the prime and key
// generators and the high-level services, and exposes them via the Wire
// struct for commands to use.
package app
