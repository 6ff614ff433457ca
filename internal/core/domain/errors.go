package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidIdentifier is returned when a module identifier is empty.
	ErrInvalidIdentifier = zerr.New("module ID cannot be empty")

	// ErrModuleNotFound is returned when no root and extension combination yields an existing module.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrReadFailure is returned when a module's source cannot be opened or read.
	ErrReadFailure = zerr.New("failed to read module source")

	// ErrAlreadyInitialized is returned when the loader is bootstrapped a second time.
	ErrAlreadyInitialized = zerr.New("initRequire cannot be called twice")

	// ErrMissingMainFile is returned when bootstrap options do not name a main file.
	ErrMissingMainFile = zerr.New("missing main file")

	// ErrMainFileNotFound is returned when the configured main file does not exist.
	ErrMainFileNotFound = zerr.New("main file doesn't exist")

	// ErrNotInitialized is returned when a module is required before bootstrap.
	ErrNotInitialized = zerr.New("require has not been initialized")

	// ErrCompileFailed is returned when the host engine rejects a module's source.
	ErrCompileFailed = zerr.New("failed to compile module")

	// ErrArchiveOpenFailed is returned when an archive root exists but cannot be opened.
	ErrArchiveOpenFailed = zerr.New("failed to open archive")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
