// Package commands exposes the command handlers of an articles container so
// hosts can register them with a go-command registry or dispatcher.
package commands

import (
	"errors"

	analyzecmd "github.com/goliatone/go-articles/internal/commands/analyze"
	indexcmd "github.com/goliatone/go-articles/internal/commands/index"
	"github.com/goliatone/go-articles/internal/di"
	"github.com/goliatone/go-command/dispatcher"
)

// CommandRegistry records command handlers so hosts can expose them via CLI.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// ErrUnsupportedHandler is returned by GoCommandDispatcher for handler types
// it cannot subscribe.
var ErrUnsupportedHandler = errors.New("commands: unsupported handler type")

// RegistrationOptions configures how handlers are registered.
type RegistrationOptions struct {
	Registry   CommandRegistry
	Dispatcher CommandDispatcher
}

// RegistrationResult captures the handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// Close releases every dispatcher subscription.
func (r *RegistrationResult) Close() {
	if r == nil {
		return
	}
	for _, sub := range r.Subscriptions {
		sub.Unsubscribe()
	}
	r.Subscriptions = nil
}

// RegisterContainerCommands collects the analyze and index handlers built by
// container and registers them with the optional registry and dispatcher.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0, 2),
		Subscriptions: make([]CommandSubscription, 0, 2),
	}

	var errs error
	register := func(handler any) {
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	if handler := container.AnalyzeHandler(); handler != nil {
		register(handler)
	}
	if handler := container.IndexHandler(); handler != nil {
		register(handler)
	}

	if len(result.Handlers) == 0 {
		return result, errors.New("no command handlers registered; ensure the container is configured")
	}
	return result, errs
}

// GoCommandDispatcher subscribes handlers to the process wide go-command
// dispatcher, so messages sent with dispatcher.Dispatch reach them.
type GoCommandDispatcher struct{}

// RegisterCommand satisfies CommandDispatcher.
func (GoCommandDispatcher) RegisterCommand(handler any) (CommandSubscription, error) {
	switch h := handler.(type) {
	case *analyzecmd.AnalyzeDirectoryHandler:
		return dispatcher.SubscribeCommand[analyzecmd.AnalyzeDirectoryCommand](h), nil
	case *indexcmd.GenerateIndexHandler:
		return dispatcher.SubscribeCommand[indexcmd.GenerateIndexCommand](h), nil
	default:
		return nil, ErrUnsupportedHandler
	}
}
