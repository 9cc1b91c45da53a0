package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	puremvc "github.com/littlespex/puremvc-go-multicore-framework"
	"github.com/littlespex/puremvc-go-multicore-framework/app"
)

// Notification names used by the roster application.
const (
	noteStartup = "app/startup"
	noteAdd     = "roster/add"
	noteAdded   = "roster/added"
)

// Member is one roster entry.
type Member struct {
	ID   string
	Name string
}

// rosterModule contributes the demo's factories to the registry.
type rosterModule struct {
	out io.Writer
}

func (m rosterModule) Register(r *app.Registry) {
	r.RegisterCommand("Startup", func() puremvc.Command { return &startupCommand{} })
	r.RegisterCommand("AddMember", func() puremvc.Command { return &addMemberCommand{} })
	r.RegisterProxy("RosterProxy", func() puremvc.Proxy { return newRosterProxy() })
	r.RegisterMediator("TerminalMediator", func() puremvc.Mediator { return newTerminalMediator(m.out) })
}

// rosterProxy holds the crew roster. Its seed data, when present, is a
// map with a "title" entry from the manifest.
type rosterProxy struct {
	*puremvc.BaseProxy
	members []Member
}

func newRosterProxy() *rosterProxy {
	return &rosterProxy{BaseProxy: puremvc.NewBaseProxy("rosterProxy", nil)}
}

// Title returns the roster title from the seed data, or a default.
func (p *rosterProxy) Title() string {
	if data, ok := p.Data().(map[string]any); ok {
		if title, ok := data["title"].(string); ok {
			return title
		}
	}
	return "Roster"
}

// Add stores a new member under a fresh ID and announces it.
func (p *rosterProxy) Add(name string) Member {
	member := Member{ID: uuid.NewString(), Name: name}
	p.members = append(p.members, member)
	p.SendNotification(noteAdded, member, "")
	return member
}

func (p *rosterProxy) Members() []Member {
	return p.members
}

// startupCommand seeds the roster from the proxy data when the core
// starts.
type startupCommand struct {
	puremvc.SimpleCommand
}

func (c *startupCommand) Execute(note puremvc.Notification) {
	proxy := c.Facade().RetrieveProxy("rosterProxy").(*rosterProxy)
	data, ok := proxy.Data().(map[string]any)
	if !ok {
		return
	}
	seed, ok := data["seed"].([]any)
	if !ok {
		return
	}
	for _, v := range seed {
		if name, ok := v.(string); ok {
			proxy.Add(name)
		}
	}
}

// addMemberCommand adds the member named in the notification body.
type addMemberCommand struct {
	puremvc.SimpleCommand
}

func (c *addMemberCommand) Execute(note puremvc.Notification) {
	name, ok := note.Body.(string)
	if !ok || name == "" {
		return
	}
	proxy := c.Facade().RetrieveProxy("rosterProxy").(*rosterProxy)
	proxy.Add(name)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	memberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	idStyle     = lipgloss.NewStyle().Faint(true)
)

// terminalMediator renders roster events to its view component, an
// io.Writer.
type terminalMediator struct {
	*puremvc.BaseMediator
}

func newTerminalMediator(out io.Writer) *terminalMediator {
	return &terminalMediator{BaseMediator: puremvc.NewBaseMediator("terminalMediator", out)}
}

func (m *terminalMediator) ListNotificationInterests() []string {
	return []string{noteStartup, noteAdded}
}

func (m *terminalMediator) HandleNotification(note puremvc.Notification) {
	out := m.ViewComponent().(io.Writer)
	switch note.Name {
	case noteStartup:
		proxy := m.Facade().RetrieveProxy("rosterProxy").(*rosterProxy)
		fmt.Fprintln(out, titleStyle.Render(proxy.Title()))
	case noteAdded:
		member := note.Body.(Member)
		fmt.Fprintf(out, "%s %s\n", memberStyle.Render(member.Name), idStyle.Render(member.ID))
	}
}
