package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/carmatch/internal/api/client"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

func reviewsCmd() *cobra.Command {
	reviewsRoot := &cobra.Command{
		Use:   "reviews",
		Short: "Read and write car reviews",
	}

	reviewsRoot.AddCommand(
		reviewsListCmd(),
		reviewsAddCmd(),
		reviewsDeleteCmd(),
	)

	return reviewsRoot
}

func reviewsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list <car-id>",
		Short:   "List a car's reviews, newest first",
		Example: `  cm reviews list 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("car", args[0])
			if err != nil {
				return err
			}

			summary, err := newClient().ListReviews(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), summary)
			}
			printReviews(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func reviewsAddCmd() *cobra.Command {
	var (
		rating  int
		title   string
		comment string
	)

	cmd := &cobra.Command{
		Use:   "add <car-id>",
		Short: "Review a car",
		Example: `  cm reviews add 42 --rating 5 --title "Great daily driver"
  cm reviews add 42 --rating 3 --title "Thirsty" --comment "Fun, but expensive to run."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}
			id, err := parseID("car", args[0])
			if err != nil {
				return err
			}
			if rating < domain.MinRating || rating > domain.MaxRating {
				return fmt.Errorf("--rating must be between %d and %d", domain.MinRating, domain.MaxRating)
			}
			if strings.TrimSpace(title) == "" {
				return errors.New("--title is required")
			}

			r := &apiclient.NewReview{CarID: id, Rating: rating, Title: title}
			if comment != "" {
				r.Comment = &comment
			}

			created, err := newClient().CreateReview(cmd.Context(), r)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			success(cmd.OutOrStdout(), "Review %d posted for car %d.", created.ID, created.CarID)
			return nil
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 0, "rating from 1 to 5")
	cmd.Flags().StringVar(&title, "title", "", "short headline")
	cmd.Flags().StringVar(&comment, "comment", "", "optional longer comment")

	return cmd
}

func reviewsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <review-id>",
		Short:   "Delete one of your reviews",
		Example: `  cm reviews delete 7 --yes`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}
			id, err := parseID("review", args[0])
			if err != nil {
				return err
			}

			ok, err := confirm(fmt.Sprintf("Delete review %d?", id), yes)
			if err != nil {
				return err
			}
			if !ok {
				notice(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			if err := newClient().DeleteReview(cmd.Context(), id); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Review %d deleted.", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
