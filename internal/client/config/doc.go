// Package config loads the runtime settings of the itemvault CLI.
//
// Sources are applied in order, later ones winning: built-in defaults, a
// JSON file named by -c/-config, command-line flags, and finally the
// ITEMVAULT_API_URL environment variable for the API base URL.
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds.
package config
