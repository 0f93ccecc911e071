// Parley is an interactive console: a scrolling message log above a
// live prompt, with command routing, history and tab completion.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"parley/app"
	"parley/command"
	"parley/config"
	"parley/logging"
	"parley/scrollback"
	"parley/term"
	"parley/theme"
)

func main() {
	var (
		configPath string
		initConfig bool
	)

	root := &cobra.Command{
		Use:          "parley",
		Short:        "Interactive console with a scrollback log and command prompt",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initConfig {
				fmt.Print(config.DefaultTOML())
				return nil
			}
			return run(configPath)
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/parley/config.toml)")
	root.Flags().BoolVar(&initConfig, "init-config", false, "print the default config file and exit")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	tty, err := term.New()
	if err != nil {
		return err
	}

	console, err := app.New(cfg, tty, logger)
	if err != nil {
		return err
	}
	if err := registerCommands(console); err != nil {
		return err
	}

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			console.NotifyResize()
		}
	}()

	console.OnStartup = func() {
		console.Print("parley ready. Type 'help' for commands, 'exit' to leave.")
	}
	return console.Run()
}

// registerCommands wires the demo commands onto the console's table.
func registerCommands(console *app.App) error {
	specs := []*command.Spec{
		{
			Name:     "echo",
			Help:     "print text to the log",
			Examples: []string{`echo hello`, `echo "hello world"`},
			Params: []command.Param{
				{Name: "text", Required: true, Help: "text to print"},
			},
			Run: func(args command.Args) error {
				console.Print(args["text"])
				return nil
			},
		},
		{
			Name:     "greet",
			Help:     "greet someone",
			Examples: []string{"greet ada", "greet ada howdy"},
			Params: []command.Param{
				{Name: "name", Required: true, Help: "who to greet"},
				{Name: "greeting", Help: "greeting word", Choices: []string{"hello", "howdy", "yo"}},
			},
			Run: func(args command.Args) error {
				greeting := args["greeting"]
				if greeting == "" {
					greeting = "hello"
				}
				console.Printf("%s, %s!", greeting, args["name"])
				return nil
			},
		},
		{
			Name:     "color",
			Help:     "print styled text",
			Examples: []string{"color red alert", "color bright-cyan hello"},
			Params: []command.Param{
				{Name: "style", Required: true, Help: "style name", ChoiceFunc: theme.Names},
				{Name: "text", Required: true, Help: "text to print"},
			},
			Run: func(args command.Args) error {
				console.PrintStyled(scrollback.NewSegment(args["text"], theme.Style(args["style"])))
				return nil
			},
		},
		{
			Name:     "prompt",
			Help:     "change the prompt text and style",
			Examples: []string{`prompt "$ "`, `prompt "> " green`},
			Params: []command.Param{
				{Name: "text", Required: true, Help: "new prompt text"},
				{Name: "style", Help: "style name", ChoiceFunc: theme.Names},
			},
			Run: func(args command.Args) error {
				console.SetPrompt(args["text"], args["style"])
				return nil
			},
		},
		{
			Name: "history",
			Help: "show submitted commands, newest first",
			Run: func(command.Args) error {
				entries := console.History().Entries()
				if len(entries) == 0 {
					console.Print("history is empty")
					return nil
				}
				for i := len(entries) - 1; i >= 0; i-- {
					console.Printf("%4d  %s", len(entries)-i, entries[i])
				}
				return nil
			},
		},
		{
			Name: "clear",
			Help: "clear the scrollback log",
			Run: func(command.Args) error {
				console.Clear()
				return nil
			},
		},
	}
	for _, spec := range specs {
		if err := console.Table().Register(spec); err != nil {
			return err
		}
	}
	return nil
}
