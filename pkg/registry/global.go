package registry

import (
	"fmt"

	"github.com/bundlekit/ruleset/pkg/rules"
)

// HandlerFactory creates a new rule property handler with the given options.
// Options come from configuration and are factory-specific.
type HandlerFactory func(options map[string]interface{}) (rules.Handler, error)

// handlerFactoryRegistry is the global registry of named handler factories.
// The engine's effective handler list is always assembled as an explicitly
// ordered slice; this registry only provides lookup by name.
var handlerFactoryRegistry Registry[HandlerFactory]

func init() {
	handlerFactoryRegistry = New[HandlerFactory]()
}

// RegisterHandlerFactory registers a factory function for creating handlers.
func RegisterHandlerFactory(name string, factory HandlerFactory) error {
	return handlerFactoryRegistry.Register(name, factory)
}

// MustRegisterHandlerFactory registers a factory and panics on failure.
// Registration errors in init() functions are programming errors.
func MustRegisterHandlerFactory(name string, factory HandlerFactory) {
	if err := RegisterHandlerFactory(name, factory); err != nil {
		panic(fmt.Sprintf("failed to register handler factory %s: %v", name, err))
	}
}

// GetHandlerFactory retrieves a handler factory by name.
func GetHandlerFactory(name string) (HandlerFactory, error) {
	factory, err := handlerFactoryRegistry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("handler factory not found: %s", name)
	}
	return factory, nil
}

// ListHandlerFactories returns the names of all registered handler factories.
func ListHandlerFactories() []string {
	return handlerFactoryRegistry.List()
}
