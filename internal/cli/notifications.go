package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notify"},
		Short:   "Manage due-task notifications without the TUI",
	}
	cmd.AddCommand(
		notificationsListCmd(),
		notificationsCheckCmd(),
		notificationsReadCmd(),
		notificationsRmCmd(),
	)
	return cmd
}

func notificationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			batch, err := a.notes.ListNotifications(cmd.Context())
			if err != nil {
				return err
			}
			if len(batch) == 0 {
				fmt.Println("No notifications.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tREAD\tMESSAGE")
			for _, n := range batch {
				fmt.Fprintf(w, "%s\t%s\t%s\n", n.ID, mark(n.Read), n.Message)
			}
			return w.Flush()
		},
	}
}

func notificationsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Ask the backend to create reminders for tasks due soon",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			created, err := a.notes.CheckDueTasks(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Created %d reminders\n", created)
			return nil
		},
	}
}

func notificationsReadCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [id]",
		Short: "Mark a notification, or all of them, as read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			if all {
				if err := a.notes.MarkAllRead(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("All notifications marked read")
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("pass a notification id or --all")
			}
			if err := a.notes.MarkRead(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Notification %s marked read\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "mark every notification read")
	return cmd
}

func notificationsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}

			if err := a.notes.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted notification %s\n", args[0])
			return nil
		},
	}
}
