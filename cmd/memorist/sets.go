package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/memorist/memorist/internal/setschedule"
)

func newSetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Manage practice schedules for flashcard sets",
	}
	cmd.AddCommand(
		newSetsListCommand(),
		newSetsScheduleCommand(),
		newSetsDoneCommand(),
	)
	return cmd
}

func newSetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every scheduled set",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeDB, err := openSetService(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeDB()
			}()

			schedules := service.List(cmd.Context())
			if len(schedules) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sets are scheduled.")
				return nil
			}
			for _, schedule := range schedules {
				fmt.Fprintln(cmd.OutOrStdout(), formatSchedule(schedule))
			}
			return nil
		},
	}
}

func newSetsScheduleCommand() *cobra.Command {
	var frequency string
	var everyDays int

	cmd := &cobra.Command{
		Use:   "schedule <set-id>",
		Short: "Create or replace the practice schedule for a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeDB, err := openSetService(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeDB()
			}()

			schedule, err := service.Schedule(cmd.Context(), args[0], setschedule.PracticeFrequency(frequency), everyDays)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatSchedule(schedule))
			return nil
		},
	}
	frequencies := make([]string, 0, len(setschedule.Frequencies))
	for _, f := range setschedule.Frequencies {
		frequencies = append(frequencies, string(f))
	}
	cmd.Flags().StringVar(&frequency, "frequency", string(setschedule.FrequencyWeekly),
		fmt.Sprintf("Practice frequency (%s)", strings.Join(frequencies, ", ")))
	cmd.Flags().IntVar(&everyDays, "every", setschedule.DefaultCustomDays, "Days between practices for the custom frequency")

	return cmd
}

func newSetsDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <set-id>",
		Short: "Record that a set was practiced and advance its next date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeDB, err := openSetService(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeDB()
			}()

			ctx := cmd.Context()
			setID := args[0]
			var found *setschedule.FlashcardSetSchedule
			for _, schedule := range service.List(ctx) {
				if schedule.SetID == setID {
					s := schedule
					found = &s
					break
				}
			}
			if found == nil {
				return fmt.Errorf("no schedule for set %q", setID)
			}

			scheduler := setschedule.NewSetScheduler()
			next := scheduler.NextPracticeDate(found.PracticeFrequency, found.CustomFrequencyDays)
			if err := service.UpdatePracticeDate(ctx, setID, time.Now(), next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s practiced. Next practice on %s.\n",
				setID, next.Format("2006-01-02"))
			return nil
		},
	}
}

func openSetService(cmd *cobra.Command) (*setschedule.Service, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	repository, closeDB, err := openRepository(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return setschedule.NewService(setschedule.NewSetScheduler(), repository), closeDB, nil
}

func formatSchedule(schedule setschedule.FlashcardSetSchedule) string {
	cadence := string(schedule.PracticeFrequency)
	if schedule.PracticeFrequency == setschedule.FrequencyCustom {
		cadence = fmt.Sprintf("every %d days", schedule.CustomFrequencyDays)
	}
	status := "active"
	if !schedule.IsActive {
		status = "paused"
	}
	last := "never practiced"
	if schedule.LastPracticed != nil {
		last = "last practiced " + schedule.LastPracticed.Format("2006-01-02")
	}
	return fmt.Sprintf("%s: %s, next on %s (%s, %s)",
		schedule.SetID, cadence, schedule.NextPracticeDate.Format("2006-01-02"), last, status)
}
