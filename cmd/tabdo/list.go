package main

import (
	"fmt"
	"io"

	"github.com/dori/tabdo/internal/model"
	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	var tabName string
	var hideDone bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			tabs := a.Board.Tabs()
			if tabName != "" {
				tab, ok := a.Board.FindTab(tabName)
				if !ok {
					return fmt.Errorf("no tab named %q", tabName)
				}
				tabs = []model.Tab{tab}
			}

			out := cmd.OutOrStdout()
			for i, tab := range tabs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printTab(out, tab, hideDone)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tabName, "tab", "t", "", "only list this tab")
	cmd.Flags().BoolVar(&hideDone, "hide-done", false, "hide completed tasks")
	return cmd
}

func printTab(out io.Writer, tab model.Tab, hideDone bool) {
	fmt.Fprintf(out, "%s (%d/%d)\n", tab.Name, tab.CompletedCount(), len(tab.Tasks))
	for _, task := range tab.Tasks {
		if hideDone && task.IsCompleted {
			continue
		}
		checkbox := "[ ]"
		if task.IsCompleted {
			checkbox = "[x]"
		}
		fmt.Fprintf(out, "  %s %s %s\n", checkbox, task.Priority.DisplayName(), task.Title)
	}
}
