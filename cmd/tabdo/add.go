package main

import (
	"fmt"
	"strings"

	"github.com/dori/tabdo/internal/app"
	"github.com/dori/tabdo/internal/model"
	"github.com/spf13/cobra"
)

func addCmd(opts *options) *cobra.Command {
	var tabName, detail string

	cmd := &cobra.Command{
		Use:   "add <task>",
		Short: "Quick add a task",
		Long: `Quick add a task to a tab.

Priority:  !high !medium !low (also !h !m !l and !高 !中 !低)`,
		Example: `  tabdo add Buy groceries !high
  tabdo add --tab Work "Review PR" --detail "before standup"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qa := parseQuickAdd(strings.Join(args, " "))
			if qa.Title == "" {
				return fmt.Errorf("task title is empty")
			}

			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := selectTab(a, tabName); err != nil {
				return err
			}
			task, err := a.Board.AddTask(qa.Title, detail, qa.Priority)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created: %s\n", task.Title)
			fmt.Fprintf(out, "Tab: %s\n", a.Board.ActiveTab().Name)
			if task.Priority != model.PriorityMedium {
				fmt.Fprintf(out, "Priority: %s\n", task.Priority)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tabName, "tab", "t", "", "tab to add the task to (default first tab)")
	cmd.Flags().StringVarP(&detail, "detail", "d", "", "task detail")
	return cmd
}

// selectTab activates the named tab. An empty name keeps the first tab.
func selectTab(a *app.App, name string) error {
	if name == "" {
		return nil
	}
	tab, ok := a.Board.FindTab(name)
	if !ok {
		return fmt.Errorf("no tab named %q", name)
	}
	a.Board.SelectTab(tab.ID)
	return nil
}

type quickAdd struct {
	Title    string
	Priority model.Priority
}

// parseQuickAdd pulls !priority tokens out of the text; the rest is the title
func parseQuickAdd(text string) quickAdd {
	qa := quickAdd{Priority: model.PriorityMedium}

	var titleParts []string
	for _, word := range strings.Fields(text) {
		if rest, ok := strings.CutPrefix(word, "!"); ok {
			if p, ok := model.ParsePriority(rest); ok {
				qa.Priority = p
				continue
			}
		}
		titleParts = append(titleParts, word)
	}

	qa.Title = strings.Join(titleParts, " ")
	return qa
}
