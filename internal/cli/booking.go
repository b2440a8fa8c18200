package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fgmedic-cli/internal/booking"
	"fgmedic-cli/internal/schedule"
)

func (a *App) doctorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctors",
		Short: "List the practice's doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.api.ListDoctors(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			for _, d := range docs {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", d.ID, d.Email)
			}
			return nil
		},
	}
}

func (a *App) slotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "Show the bookable time slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range schedule.Slots() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func (a *App) bookCmd() *cobra.Command {
	var (
		doctorID int
		dateStr  string
		slot     string
		reason   string
		yes      bool
	)
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := booking.NewForm(a.api, a.session, a.log)
			if err := form.LoadDoctors(cmd.Context()); err != nil {
				return friendly(err)
			}

			form.SetDoctor(doctorID)
			if dateStr != "" {
				d, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
				}
				if err := form.SetDate(d); err != nil {
					return err
				}
			}
			if slot != "" {
				if err := form.SetSlot(slot); err != nil {
					return err
				}
			}
			form.SetReason(reason)

			if err := form.Validate(); err != nil {
				return err
			}

			s := form.Summary()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Please review your appointment:")
			fmt.Fprintf(out, "  doctor: %s\n", s.DoctorEmail)
			fmt.Fprintf(out, "  date:   %s\n", s.Date)
			fmt.Fprintf(out, "  time:   %s\n", s.Time)
			fmt.Fprintf(out, "  reason: %s\n", s.Reason)

			if !yes && !confirm(cmd.InOrStdin(), out, "Confirm booking?") {
				form.Cancel()
				fmt.Fprintln(out, "booking cancelled")
				return nil
			}

			if err := form.Submit(cmd.Context()); err != nil {
				return friendly(err)
			}
			fmt.Fprintln(out, "appointment booked")
			return nil
		},
	}
	cmd.Flags().IntVar(&doctorID, "doctor", 0, "doctor id (see `fgmedic doctors`)")
	cmd.Flags().StringVar(&dateStr, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&slot, "time", "", `time slot, e.g. "09:00"`)
	cmd.Flags().StringVar(&reason, "reason", "", "reason for the visit")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
