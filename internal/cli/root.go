package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskdeck/internal/tui"
)

func Execute() error {
	return NewRoot().Execute()
}

// NewRoot returns the taskdeck command tree. The bare command runs the
// interactive TUI; subcommands cover headless use.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskdeck",
		Short:         "Terminal client for the task backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
	root.AddCommand(
		loginCmd(),
		logoutCmd(),
		registerCmd(),
		whoamiCmd(),
		tasksCmd(),
		notificationsCmd(),
	)
	return root
}

var runTUI = func() error {
	var program *tea.Program

	a, err := newApp(func() {
		if program != nil {
			program.Send(tui.NotificationsChanged())
		}
	})
	if err != nil {
		return err
	}

	m := tui.NewModel(a.l, a.session, a.tasks, a.poller)
	program = tea.NewProgram(m, tea.WithAltScreen())

	// The poller lives exactly as long as the program: cancelling the
	// context tears the recurring check down.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Gated on the live session so a user who logs in mid-run starts
	// getting sweeps and a logout stops them.
	a.poller.SetGate(a.session.IsAuthenticated)
	go a.poller.Run(ctx)

	_, err = program.Run()
	return err
}
