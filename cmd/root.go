package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/postbox-tui/postbox/pkg/config"
	"github.com/postbox-tui/postbox/pkg/model"
)

var (
	flags = struct {
		ConfigFile  string
		NoAltScreen bool
		Debug       bool
	}{}

	root = &cobra.Command{
		Use:   "postbox",
		Short: "Postbox is a terminal posts board",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.Debug {
				logfile, err := config.RuntimeFile("postbox.log")
				if err != nil {
					return fmt.Errorf("unable to resolve debug log path: %w", err)
				}
				f, err := tea.LogToFile(logfile, "postbox")
				if err != nil {
					return err
				}
				defer f.Close()
			}

			m, err := model.NewFromConfigFile(flags.ConfigFile, flags.Debug)
			if err != nil {
				return err
			}

			var opts []tea.ProgramOption
			if !flags.NoAltScreen {
				opts = append(opts, tea.WithAltScreen())
			}

			p := tea.NewProgram(m, opts...)
			return p.Start()
		},
	}
)

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "~/.postbox.yaml", "configuration file")
	root.PersistentFlags().BoolVar(&flags.NoAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "log debug output to a runtime file")
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
