// Package commands defines the spbuctl CLI.
//
// Commands
//
//   - list     Print every station known to the upstream API
//   - export   Write the PDF report of one station, or of all stations with --all
//
// The root command loads the YAML configuration and builds the upstream
// client, snapshot store and exporter before any subcommand runs.
package commands
