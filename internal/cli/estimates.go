package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"estimate_agent/internal/app"
	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase"

	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04"

func newListEstimatesCommand(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list-estimates",
		Short: "List recent estimates, or the estimate of --session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(a *app.App) error {
				ctx := cmd.Context()

				var estimates []entities.Estimate
				if opts.sessionID != "" {
					e, err := a.Estimates.GetBySessionID(ctx, opts.sessionID)
					if err != nil {
						return err
					}
					estimates = []entities.Estimate{e}
				} else {
					list, err := a.Estimates.ListRecent(ctx, limit)
					if err != nil {
						return err
					}
					estimates = list
				}

				out := cmd.OutOrStdout()
				if len(estimates) == 0 {
					fmt.Fprintln(out, "No estimates found")
					return nil
				}
				for _, e := range estimates {
					printEstimate(out, e)
					if opts.verbose {
						if err := printEstimateDetails(cmd, a, e); err != nil {
							return err
						}
					}
					fmt.Fprintln(out)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", usecase.DefaultRecentLimit, "Number of recent estimates")
	return cmd
}

func newCreateEstimateCommand(opts *options) *cobra.Command {
	var title, requirements string

	cmd := &cobra.Command{
		Use:   "create-estimate",
		Short: "Create a draft estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(requirements) == "" {
				return errors.New("--requirements is required")
			}
			return withApp(cmd, opts, func(a *app.App) error {
				e, err := a.Estimates.CreateEstimate(cmd.Context(), usecase.CreateEstimateInput{
					SessionID:    opts.sessionID,
					Title:        title,
					Requirements: requirements,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Estimate created")
				printEstimate(cmd.OutOrStdout(), e)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Estimate title")
	cmd.Flags().StringVarP(&requirements, "requirements", "r", "", "Initial requirements")
	return cmd
}

func printEstimate(w io.Writer, e entities.Estimate) {
	fmt.Fprintf(w, "%s  %s\n", e.ID, e.Title)
	fmt.Fprintf(w, "  session: %s\n", e.SessionID)
	fmt.Fprintf(w, "  status:  %s\n", e.Status)
	fmt.Fprintf(w, "  created: %s\n", e.CreatedAt.Local().Format(timeLayout))
	if e.ExpiresAt != nil {
		fmt.Fprintf(w, "  expires: %s\n", e.ExpiresAt.Local().Format(timeLayout))
	} else {
		fmt.Fprintln(w, "  expires: never")
	}
}

func printEstimateDetails(cmd *cobra.Command, a *app.App, e entities.Estimate) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "  requirements: %s\n", e.InitialRequirements)
	fmt.Fprintf(w, "  total: %.2f\n", e.TotalAmount)

	items, err := a.Estimates.ListItems(ctx, e.SessionID)
	if err != nil {
		if isGone(err) {
			return nil
		}
		return err
	}
	if len(items) > 0 {
		fmt.Fprintln(w, "  items:")
		for _, it := range items {
			mark := " "
			if it.IsSelected {
				mark = "x"
			}
			fmt.Fprintf(w, "    [%s] %s  %d x %.2f = %.2f\n", mark, it.Name, it.Quantity, it.UnitPrice, it.Subtotal())
		}
	}

	_, questions, err := a.Questions.ListBySession(ctx, e.SessionID)
	if err != nil {
		if isGone(err) {
			return nil
		}
		return err
	}
	if len(questions) > 0 {
		fmt.Fprintln(w, "  questions:")
		for _, q := range questions {
			answer := "(unanswered)"
			if q.IsAnswered {
				answer = q.Answer
			}
			fmt.Fprintf(w, "    Q: %s\n    A: %s\n", q.Question, answer)
		}
	}
	return nil
}

// isGone reports errors that only mean the session can no longer be read.
func isGone(err error) bool {
	return errors.Is(err, usecase.ErrEstimateExpired) || errors.Is(err, usecase.ErrEstimateNotFound)
}
