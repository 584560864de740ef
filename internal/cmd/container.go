package cmd

import (
	"fmt"
	"io"

	"github.com/samber/do"

	"minijava/internal/config"
	"minijava/internal/context"
)

// Container wraps the do.Injector holding the command's services
type Container struct {
	*do.Injector
}

// NewContainer registers the configuration, the compiler options derived from
// it and the runner. Services are built lazily on first use.
func NewContainer(cfg *config.Config, out, errOut io.Writer) *Container {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	do.Provide(injector, func(i *do.Injector) (*context.CompilerOptions, error) {
		cfg, err := do.Invoke[*config.Config](i)
		if err != nil {
			return nil, err
		}
		return OptionsFromConfig(cfg), nil
	})

	do.Provide(injector, func(i *do.Injector) (*Runner, error) {
		RegisterPhases()
		options := do.MustInvoke[*context.CompilerOptions](i)
		return NewRunner(options, out, errOut), nil
	})

	return &Container{Injector: injector}
}

// Runner resolves the runner and its dependencies
func (c *Container) Runner() (*Runner, error) {
	runner, err := do.Invoke[*Runner](c.Injector)
	if err != nil {
		return nil, fmt.Errorf("failed to build runner: %w", err)
	}
	return runner, nil
}

// Shutdown releases every service in the container
func (c *Container) Shutdown() error {
	return c.Injector.Shutdown()
}
