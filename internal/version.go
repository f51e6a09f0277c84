package internal

// Version is the application version, surfaced via the root command.
var Version = "0.1.0"
