package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings depend on CLI flags and are resolved by the controllers layer
	return container.Provide(func() HostingPlatform {
		return GitHub
	})
}
