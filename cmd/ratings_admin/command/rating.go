package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/rating_registry/internal/core/domain"
	portssvc "github.com/SscSPs/rating_registry/internal/core/ports/services"
	"github.com/SscSPs/rating_registry/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func newSaveCmd(a *app) *cobra.Command {
	var req dto.SaveRatingRequest
	var moodys, sp, fitch string
	var order int

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create a rating, or update one with --id",
		Long: `Create or update a rating. Omit --order to place a new rating after the
current lowest rank, or to keep the rank of an existing one.

With --id only the flags given are changed; the stored notations and rank
are kept for the rest. Pass an empty value (--sp "") to remove a notation.`,
		Example: `  ratings_admin save --moodys Aaa --sp AAA --fitch AAA
  ratings_admin save --moodys Ba1 --sp BB+ --fitch BB+ --order 13
  ratings_admin save --id 4 --fitch BBB-`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("moodys") {
				req.MoodysRating = &moodys
			}
			if flags.Changed("sp") {
				req.SPRating = &sp
			}
			if flags.Changed("fitch") {
				req.FitchRating = &fitch
			}
			if flags.Changed("order") {
				req.OrderNumber = &order
			}

			if err := dto.ValidateStruct(req); err != nil {
				return describeValidation(err)
			}

			return a.withService(cmd.Context(), func(svc portssvc.RatingSvcFacade) error {
				rating := req.ToDomain()
				if req.ID != 0 {
					stored, err := svc.FindRatingByID(cmd.Context(), req.ID)
					if err != nil {
						return fmt.Errorf("failed to load rating %d: %w", req.ID, err)
					}
					rating = req.ApplyTo(*stored)
				}

				saved, err := svc.SaveRating(cmd.Context(), rating)
				if err != nil {
					return fmt.Errorf("failed to save rating: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), dto.ToRatingResponse(saved))
			})
		},
	}

	cmd.Flags().Int64Var(&req.ID, "id", 0, "ID of the rating to update (0 creates a new one)")
	cmd.Flags().StringVar(&moodys, "moodys", "", "Moody's notation, e.g. Baa3")
	cmd.Flags().StringVar(&sp, "sp", "", "S&P notation, e.g. BBB-")
	cmd.Flags().StringVar(&fitch, "fitch", "", "Fitch notation, e.g. BBB-")
	cmd.Flags().IntVar(&order, "order", 0, "Rank of the rating, 1 being the best")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get [rating-id]",
		Short: "Show a rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withService(cmd.Context(), func(svc portssvc.RatingSvcFacade) error {
				rating, err := svc.FindRatingByID(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("failed to get rating: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), dto.ToRatingResponse(rating))
			})
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [rating-id]",
		Short: "Delete a rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withService(cmd.Context(), func(svc portssvc.RatingSvcFacade) error {
				if err := svc.DeleteRating(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to delete rating: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Rating %d deleted\n", id)
				return nil
			})
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var agency, grade string
	var minRank, maxRank int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ratings, best rank first",
		Example: `  ratings_admin list
  ratings_admin list --agency fitch
  ratings_admin list --grade investment
  ratings_admin list --min 10 --max 15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			ranged := flags.Changed("min") || flags.Changed("max")
			if ranged && (flags.Changed("agency") || flags.Changed("grade")) {
				return errors.New("--min/--max cannot be combined with --agency or --grade")
			}

			return a.withService(cmd.Context(), func(svc portssvc.RatingSvcFacade) error {
				ctx := cmd.Context()
				var (
					ratings []domain.Rating
					err     error
				)
				switch {
				case flags.Changed("agency"):
					ratings, err = svc.FindByAgency(ctx, agency)
				case flags.Changed("grade"):
					switch strings.ToLower(grade) {
					case "investment":
						ratings, err = svc.FindInvestmentGrade(ctx)
					case "speculative":
						ratings, err = svc.FindSpeculativeGrade(ctx)
					default:
						return fmt.Errorf("unknown grade %q: use investment or speculative", grade)
					}
				case ranged:
					// A missing bound leaves that end of the range open.
					low, high := domain.FirstRank, math.MaxInt
					if flags.Changed("min") {
						low = minRank
					}
					if flags.Changed("max") {
						high = maxRank
					}
					ratings, err = svc.FindByOrderRange(ctx, &low, &high)
				default:
					ratings, err = svc.FindAll(ctx)
				}
				if err != nil {
					return fmt.Errorf("failed to list ratings: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), dto.ToListRatingResponse(ratings))
			})
		},
	}

	cmd.Flags().StringVar(&agency, "agency", "", "Only ratings with a notation from this agency (moodys, sp, fitch)")
	cmd.Flags().StringVar(&grade, "grade", "", "Only investment or speculative grade ratings")
	cmd.Flags().IntVar(&minRank, "min", 0, "Lowest rank to include")
	cmd.Flags().IntVar(&maxRank, "max", 0, "Highest rank to include")
	cmd.MarkFlagsMutuallyExclusive("agency", "grade")
	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rating ID: %w", err)
	}
	return id, nil
}

// describeValidation turns validator field errors into one readable line.
func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q check (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid rating: %s", strings.Join(msgs, "; "))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
