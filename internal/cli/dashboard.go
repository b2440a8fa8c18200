package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"fgmedic-cli/internal/dashboard"
	"fgmedic-cli/internal/model"
	"fgmedic-cli/internal/schedule"
)

func (a *App) appointmentsCmd() *cobra.Command {
	var past bool
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List your appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := a.api.ListAppointments(cmd.Context())
			if err != nil {
				return friendly(err)
			}

			now := time.Now()
			upcoming, history := schedule.Partition(appts, now)
			out := cmd.OutOrStdout()

			if past {
				fmt.Fprintf(out, "Past appointments (%d):\n", len(history))
				printAppointments(out, history, now)
				return nil
			}
			fmt.Fprintf(out, "Upcoming appointments (%d):\n", len(upcoming))
			printAppointments(out, upcoming, now)
			return nil
		},
	}
	cmd.Flags().BoolVar(&past, "past", false, "show the past list instead")
	return cmd
}

func printAppointments(out io.Writer, appts []model.Appointment, now time.Time) {
	for _, ap := range appts {
		marker := " "
		if schedule.Actionable(ap, now) {
			// same-day, still confirmed: a doctor can mark it now
			marker = "*"
		}
		fmt.Fprintf(out, "%s %4d  %s  %-12s %s — %s\n",
			marker, ap.ID, ap.Time.Local().Format("2006-01-02 15:04"),
			ap.Status, ap.PatientName, ap.Reason)
	}
}

func (a *App) attendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attend <appointment-id>",
		Short: "Mark a same-day appointment as attended",
		Args:  cobra.ExactArgs(1),
		RunE:  a.statusRunE(model.StatusAttended),
	}
}

func (a *App) missCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "miss <appointment-id>",
		Short: "Mark a same-day appointment as a no-show",
		Args:  cobra.ExactArgs(1),
		RunE:  a.statusRunE(model.StatusNoShow),
	}
}

func (a *App) statusRunE(status string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("appointment id must be a number: %w", err)
		}

		ctl := dashboard.NewController(a.api, a.session, a.log)
		if err := ctl.Refresh(cmd.Context()); err != nil {
			return friendly(err)
		}
		if err := ctl.SetStatus(cmd.Context(), id, status); err != nil {
			return friendly(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "appointment %d marked %q\n", id, status)
		fmt.Fprintf(cmd.OutOrStdout(), "Upcoming appointments (%d):\n", len(ctl.Upcoming()))
		printAppointments(cmd.OutOrStdout(), ctl.Upcoming(), time.Now())
		return nil
	}
}

func (a *App) calendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar <calendar-id>",
		Short: "Set your external calendar identifier (doctors)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := dashboard.NewController(a.api, a.session, a.log)
			if err := ctl.SaveCalendarID(cmd.Context(), args[0]); err != nil {
				return friendly(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "calendar id saved")
			return nil
		},
	}
}
