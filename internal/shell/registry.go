package shell

import "context"

// Handler runs one dispatched command.
type Handler func(ctx context.Context, s *Shell) error

// Command is an entry of the command table.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Run         Handler
}

// registry keeps commands in registration order and indexes them by alias.
type registry struct {
	order   []*Command
	byAlias map[string]*Command
}

func newRegistry() *registry {
	return &registry{byAlias: map[string]*Command{}}
}

// Register adds a command. Aliases are matched against lower-cased names.
func (r *registry) Register(c Command) {
	cmd := &c
	r.order = append(r.order, cmd)
	for _, a := range c.Aliases {
		r.byAlias[a] = cmd
	}
}

// Lookup finds the command registered under alias.
func (r *registry) Lookup(alias string) (*Command, error) {
	c, ok := r.byAlias[alias]
	if !ok {
		return nil, ErrUnknown{name: alias}
	}
	return c, nil
}

// Commands returns the table in registration order.
func (r *registry) Commands() []*Command {
	return r.order
}

// ErrUnknown is returned when no command matches an option name.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown command: " + e.name }
