package cli

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"todolist/internal/events"
	"todolist/internal/models"
)

// argInput feeds command arguments to the add event.
type argInput struct {
	value string
}

func (i *argInput) CurrentValue() string { return i.value }
func (i *argInput) SetValue(text string) { i.value = text }

// errNotifier turns a notification into a command error.
type errNotifier struct {
	err error
}

func (n *errNotifier) Notify(message string) { n.err = errors.New(message) }

// discardView drops rendered markup; the terminal prints its own listing.
type discardView struct{}

func (discardView) Update(template.HTML) {}

func newTasksCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"t"},
		Short:   "Work with the saved task list",
		Long: `Work with the saved task list from the terminal.

Task numbers start at 1 and follow the order shown by 'tasks list'.

A running server keeps its own copy of the list and does not see these
changes; its next save overwrites them. Stop the server before editing
the list from the terminal.`,
	}

	cmd.AddCommand(
		newTasksListCommand(opts),
		newTasksAddCommand(opts),
		newTasksToggleCommand(opts),
		newTasksRemoveCommand(opts),
		newTasksClearCommand(opts),
	)

	return cmd
}

func newTasksListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			printTasks(cmd.OutOrStdout(), a.Router.Snapshot())
			return nil
		},
	}
}

func newTasksAddCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Add a task",
		Long: `Add a task to the end of the list.

All arguments are joined with spaces to form the task name.

Examples:
  todolist tasks add Buy milk
  todolist tasks add "Call the dentist"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			in := &argInput{value: strings.Join(args, " ")}
			n := &errNotifier{}
			name := in.value

			switch a.Router.Add(cmd.Context(), in, n, discardView{}) {
			case events.Rejected:
				return n.err
			case events.Applied:
				fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d: %s\n", len(a.Router.Snapshot()), name)
			}
			return nil
		},
	}
}

func newTasksToggleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <number>",
		Short: "Toggle a task between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClick(cmd, opts, args[0], events.PartItem, "Toggled")
		},
	}
}

func newTasksRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <number>",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClick(cmd, opts, args[0], events.PartDelete, "Removed")
		},
	}
}

func newTasksClearCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.Router.Clear(cmd.Context(), discardView{}) == events.Ignored {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks to clear")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all tasks")
			return nil
		},
	}
}

// runClick applies a list click at a 1-based task number.
func runClick(cmd *cobra.Command, opts *rootOptions, arg string, part events.Part, verb string) error {
	number, err := parseTaskNumber(arg)
	if err != nil {
		return err
	}

	a, err := opts.load(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	target := events.Target{Part: part, Index: number - 1}
	if a.Router.Click(cmd.Context(), target, discardView{}) != events.Applied {
		return fmt.Errorf("%w: no task #%d", models.ErrIndexOutOfRange, number)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s task #%d\n", verb, number)
	return nil
}

func parseTaskNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task number %q", arg)
	}
	return n, nil
}

func printTasks(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks")
		return
	}

	done := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	for i, t := range tasks {
		if t.Completed {
			fmt.Fprintf(w, "%3d. %s %s\n", i+1, done.Sprint("[x]"), faint.Sprint(t.Name))
			continue
		}
		fmt.Fprintf(w, "%3d. [ ] %s\n", i+1, t.Name)
	}
}
