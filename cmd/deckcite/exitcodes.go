package main

// Exit codes used by all deckcite commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing deck, invalid config)
	ExitDataError   = 3 // Data error (store I/O failure, malformed template)
	ExitNotFound    = 4 // Record, page, or search result not found
)
