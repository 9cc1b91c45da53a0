package puremvc

// Command encapsulates a unit of application logic triggered by a
// notification. The Controller constructs a fresh instance per
// delivery through the registered factory, so commands may keep
// per-execution state without cleanup concerns.
type Command interface {
	Notifier
	Execute(note Notification)
}

// SimpleCommand is an embeddable Command base with a no-op Execute.
type SimpleCommand struct {
	BaseNotifier
}

func (c *SimpleCommand) Execute(Notification) {}

// MacroCommand executes an ordered list of sub-commands. Each
// sub-command is produced by its factory at execution time,
// initialized against the macro's core, and run with the same
// notification, in the order the factories were added.
type MacroCommand struct {
	BaseNotifier
	factories []func() Command
}

// AddSubCommand appends a sub-command factory.
func (c *MacroCommand) AddSubCommand(factory func() Command) {
	c.factories = append(c.factories, factory)
}

func (c *MacroCommand) Execute(note Notification) {
	for _, factory := range c.factories {
		cmd := factory()
		cmd.InitializeNotifier(c.key)
		cmd.Execute(note)
	}
}
