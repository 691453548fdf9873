package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
	"taskdeck/pkg/datemath"
)

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks without the TUI",
	}
	cmd.AddCommand(
		tasksListCmd(),
		tasksAddCmd(),
		tasksDoneCmd(),
		tasksRmCmd(),
	)
	return cmd
}

func tasksListCmd() *cobra.Command {
	var (
		search   string
		category string
		priority string
		status   string
		sortBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			if _, err := a.tasks.Reload(cmd.Context()); err != nil {
				return err
			}

			visible := a.tasks.Visible(task.Criteria{
				Search:   search,
				Category: task.CategoryFilter(category),
				Priority: task.PriorityFilter(priority),
				Status:   task.StatusFilter(status),
				SortBy:   task.SortKey(sortBy),
			})
			if len(visible) == 0 {
				fmt.Println("No tasks match.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDONE\tPRIORITY\tCATEGORY\tDUE\tTITLE")
			for _, t := range visible {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, mark(t.Completed), t.Priority, t.Category, due(t.DueDate), t.Title)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring match on title or description")
	cmd.Flags().StringVar(&category, "category", string(task.CategoryAll), "work, personal, study, other or all")
	cmd.Flags().StringVar(&priority, "priority", string(task.PriorityAll), "high, medium, low or all")
	cmd.Flags().StringVar(&status, "status", string(task.StatusAll), "active, completed or all")
	cmd.Flags().StringVar(&sortBy, "sort", string(task.SortByDueDate), "due_date, priority or title")
	return cmd
}

func tasksAddCmd() *cobra.Command {
	var (
		description string
		priority    string
		category    string
		dueDate     string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			in := task.SaveInput{
				Title:       strings.TrimSpace(args[0]),
				Description: description,
				Priority:    model.Priority(priority),
				Category:    model.Category(category),
			}
			if dueDate != "" {
				d, err := datemath.Parse(dueDate, time.Now())
				if err != nil {
					return fmt.Errorf("invalid --due: %w", err)
				}
				in.DueDate = &d
			}

			created, err := a.tasks.Save(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Created task %s: %s\n", created.ID, created.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(model.PriorityMedium), "high, medium or low")
	cmd.Flags().StringVarP(&category, "category", "c", string(model.CategoryPersonal), "work, personal, study or other")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date: YYYY-MM-DD, today, tomorrow, in N days, next friday")
	return cmd
}

func tasksDoneCmd() *cobra.Command {
	var reopen bool

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			updated, err := a.tasks.ToggleComplete(cmd.Context(), args[0], !reopen)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", mark(updated.Completed), updated.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reopen, "reopen", false, "mark active instead")
	return cmd
}

func tasksRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			if err := a.tasks.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted task %s\n", args[0])
			return nil
		},
	}
}

func mark(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func due(d *time.Time) string {
	if d == nil {
		return "-"
	}
	return d.Format("2006-01-02")
}
