// Package commands defines the rspki CLI and wires dependencies for subcommands.
//
// Commands
//
//   - prime    Print one probable prime in decimal
//   - keygen   Print an RSA public/private key pair as (n, e) and (n, d)
//   - bench    Time prime generation over a sweep of bit lengths
//
// # Implementation
//
// The root command loads configuration through viper (flags, RSPKI_* env
// vars, then an optional YAML file) and builds the dependency graph before
// any subcommand runs. Results go to stdout; diagnostics are logged to
// stderr with apex/log. Long-running work is cancelled on Ctrl-C.
package commands
