package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dori/tabdo/internal/app"
	"github.com/dori/tabdo/internal/storage"
	"github.com/spf13/cobra"
)

func storeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "List stored blobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			_, keys, err := storedKeys(a)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(keys) == 0 {
				fmt.Fprintln(out, "Store is empty")
				return nil
			}
			for _, key := range keys {
				data, err := a.Store.Load(key)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", key, err)
				}
				fmt.Fprintf(out, "%-28s %6d bytes\n", key, len(data))
			}
			return nil
		},
	}

	cmd.AddCommand(storeResetCmd(opts))
	return cmd
}

func storeResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <key>",
		Short: "Drop a stored blob so it loads as the default next time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			inspector, keys, err := storedKeys(a)
			if err != nil {
				return err
			}
			if !slices.Contains(keys, args[0]) {
				return fmt.Errorf("nothing stored under %q", args[0])
			}
			if err := inspector.Delete(args[0]); err != nil {
				return fmt.Errorf("failed to reset %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s\n", args[0])
			return nil
		},
	}
}

func storedKeys(a *app.App) (storage.Inspector, []string, error) {
	inspector, ok := a.Store.(storage.Inspector)
	if !ok {
		return nil, nil, errors.New("store does not support inspection")
	}
	keys, err := inspector.Keys()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return inspector, keys, nil
}
