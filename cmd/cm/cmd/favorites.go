package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func favoritesCmd() *cobra.Command {
	favRoot := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage your saved cars",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return requireToken()
		},
	}

	favRoot.AddCommand(
		favoritesListCmd(),
		favoritesAddCmd(),
		favoritesRemoveCmd(),
		favoritesCheckCmd(),
		favoritesCountCmd(),
	)

	return favRoot
}

func favoritesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your saved cars, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			favorites, err := newClient().ListFavorites(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, favorites)
			}
			if len(favorites) == 0 {
				fmt.Fprintln(out, "No favorites yet.")
				return nil
			}
			printFavorites(out, favorites)
			return nil
		},
	}
}

func favoritesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <car-id>",
		Short:   "Save a car",
		Example: `  cm favorites add 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("car", args[0])
			if err != nil {
				return err
			}

			f, err := newClient().AddFavorite(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), f)
			}
			success(cmd.OutOrStdout(), "Car %d saved.", f.CarID)
			return nil
		},
	}
}

func favoritesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <car-id>",
		Short:   "Remove a saved car",
		Example: `  cm favorites remove 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("car", args[0])
			if err != nil {
				return err
			}

			if err := newClient().RemoveFavorite(cmd.Context(), id); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Car %d removed from favorites.", id)
			return nil
		},
	}
}

func favoritesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check <car-id>",
		Short:   "Check whether a car is saved",
		Example: `  cm favorites check 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("car", args[0])
			if err != nil {
				return err
			}

			ok, err := newClient().IsFavorite(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, map[string]any{"car_id": id, "is_favorite": ok})
			}
			if ok {
				success(out, "Car %d is a favorite.", id)
			} else {
				notice(out, "Car %d is not a favorite.", id)
			}
			return nil
		},
	}
}

func favoritesCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count your saved cars",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := newClient().CountFavorites(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]int{"count": n})
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
