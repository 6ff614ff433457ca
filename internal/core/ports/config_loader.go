package ports

import "go.trai.ch/cjs/internal/core/domain"

// OptionsLoader defines the interface for loading bootstrap options from a project file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type OptionsLoader interface {
	// Load reads the options file. An empty path means the default file in cwd.
	// A missing default file yields zero options and no error.
	Load(cwd, path string) (domain.Options, error)
}
