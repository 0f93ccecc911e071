package command

import (
	"fmt"
	"strings"
)

// Host is the surface the built-in commands need from the hosting
// application.
type Host interface {
	// Println appends one line of plain output to the log.
	Println(text string)
	// Stop ends the run loop after the current dispatch.
	Stop()
}

// RegisterBuiltins installs the commands every console carries: help,
// exit (with the quit alias) and alias.
func RegisterBuiltins(t *Table, h Host) error {
	help := &Spec{
		Name: "help",
		Help: "list commands, or show usage and examples for one",
		Params: []Param{{
			Name:       "command",
			Help:       "command to describe",
			ChoiceFunc: t.Names,
		}},
		Examples: []string{"help", "help alias"},
		Run: func(args Args) error {
			if name, ok := args["command"]; ok {
				return describeCommand(t, h, name)
			}
			listCommands(t, h)
			return nil
		},
	}
	if err := t.Register(help); err != nil {
		return err
	}

	exit := &Spec{
		Name: "exit",
		Help: "leave the console",
		Run: func(Args) error {
			h.Stop()
			return nil
		},
	}
	if err := t.Register(exit); err != nil {
		return err
	}
	if err := t.Alias("quit", "exit"); err != nil {
		return err
	}

	alias := &Spec{
		Name: "alias",
		Help: "register a new name for an existing command",
		Params: []Param{
			{Name: "new", Required: true, Help: "name to add"},
			{Name: "existing", Required: true, Help: "command it refers to", ChoiceFunc: t.Names},
		},
		Examples: []string{"alias q quit"},
		Run: func(args Args) error {
			if err := t.Alias(args["new"], args["existing"]); err != nil {
				return err
			}
			h.Println(fmt.Sprintf("aliased %s to %s", args["new"], args["existing"]))
			return nil
		},
	}
	return t.Register(alias)
}

func listCommands(t *Table, h Host) {
	h.Println("available commands:")
	for _, spec := range t.Specs() {
		h.Println(fmt.Sprintf("  %-12s %s", spec.Name, spec.Help))
	}
}

func describeCommand(t *Table, h Host, name string) error {
	spec, err := t.Resolve(name)
	if err != nil {
		return err
	}
	h.Println("usage: " + spec.Usage())
	if spec.Help != "" {
		h.Println("  " + spec.Help)
	}
	for _, p := range spec.Params {
		line := fmt.Sprintf("  %-12s %s", p.Name, p.Help)
		if len(p.Choices) > 0 {
			line += " (one of: " + strings.Join(p.Choices, ", ") + ")"
		}
		h.Println(line)
	}
	if aliases := spec.Aliases(); len(aliases) > 0 {
		h.Println("aliases: " + strings.Join(aliases, ", "))
	}
	for _, example := range spec.Examples {
		h.Println("example: " + example)
	}
	return nil
}
