package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func setsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List saved task sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			sets := a.TaskSets.LoadAll()
			if len(sets) == 0 {
				fmt.Fprintln(out, "No task sets")
				return nil
			}
			for _, set := range sets {
				fmt.Fprintf(out, "%s (%d tasks, %s)\n", set.Name, len(set.Tasks), set.CreatedAt.Local().Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.AddCommand(setsApplyCmd(opts))
	cmd.AddCommand(setsSaveCmd(opts))
	cmd.AddCommand(setsDeleteCmd(opts))
	return cmd
}

func setsApplyCmd(opts *options) *cobra.Command {
	var tabName string

	cmd := &cobra.Command{
		Use:   "apply <name>",
		Short: "Add the tasks of a set to a tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			set, ok := a.TaskSets.FindByName(args[0])
			if !ok {
				return fmt.Errorf("no task set named %q", args[0])
			}
			if err := selectTab(a, tabName); err != nil {
				return err
			}
			added := a.Board.ApplyTaskSet(set)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d task(s) to %s\n", len(added), a.Board.ActiveTab().Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tabName, "tab", "t", "", "target tab (default first tab)")
	return cmd
}

func setsSaveCmd(opts *options) *cobra.Command {
	var tabName string

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the tasks of a tab as a new set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := selectTab(a, tabName); err != nil {
				return err
			}
			set, err := a.SaveTaskSet(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d tasks)\n", set.Name, len(set.Tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tabName, "tab", "t", "", "source tab (default first tab)")
	return cmd
}

func setsDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a task set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			set, ok := a.TaskSets.FindByName(args[0])
			if !ok {
				return fmt.Errorf("no task set named %q", args[0])
			}
			if err := a.TaskSets.Delete(set.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", set.Name)
			return nil
		},
	}
}
