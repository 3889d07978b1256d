package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
)

// TimerCmd manages the running timer
type TimerCmd struct {
	Manual TimerManualCmd `cmd:"manual" help:"Record a completed entry without running a timer"`
	Start  TimerStartCmd  `cmd:"start" help:"Start a timer"`
	Status TimerStatusCmd `cmd:"status" help:"Show the running timer" default:"withargs"`
	Stop   TimerStopCmd   `cmd:"stop" help:"Stop the running timer"`
}

// restoreTimer reconciles this process with the persisted and remote timer
func restoreTimer(ctx context.Context, cli *CLI) (*domain.Timer, error) {
	timer, err := cli.Container.TimerService.Restore(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAuthRejected) {
			return nil, explain(err)
		}
		logging.Logger.Warn("Timer reconcile failed", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return timer, nil
}

// fillSelection applies the project/task flags to the timer form
func fillSelection(ctx context.Context, cli *CLI, project, task, newTask string) error {
	timer := cli.Container.TimerService
	if _, err := timer.SelectProject(ctx, project); err != nil {
		return explain(err)
	}
	if newTask != "" {
		timer.SetInlineTask(newTask)
		return nil
	}
	if err := timer.SelectTask(task); err != nil {
		return explain(err)
	}
	return nil
}

// TimerStartCmd starts a timer
type TimerStartCmd struct {
	Billable    bool   `help:"Mark the entry billable"`
	Description string `help:"What you are working on"`
	NewTask     string `help:"Create a task with this name and track it" xor:"task"`
	Project     string `help:"Project ID" required:""`
	Task        string `help:"Task ID" xor:"task"`
	Tracking    string `help:"Tracking type: hourly, daily, weekly or monthly (default from settings)"`
}

// Run executes the timer start command
func (t *TimerStartCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}
	ctx := context.Background()

	if running, err := restoreTimer(ctx, cli); err != nil {
		return err
	} else if running != nil {
		return fmt.Errorf("a timer is already running since %s, run 'punch timer stop' first",
			running.StartedAt.Local().Format("15:04"))
	}

	if err := fillSelection(ctx, cli, t.Project, t.Task, t.NewTask); err != nil {
		return err
	}
	svc := cli.Container.TimerService
	svc.SetDescription(t.Description)
	svc.SetBillable(t.Billable)
	if t.Tracking != "" {
		tt, err := domain.ParseTrackingType(t.Tracking)
		if err != nil {
			return err
		}
		svc.SetTrackingType(tt)
	}

	timer, err := svc.Start(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("a timer is already running, run 'punch timer stop' first: %w", err)
		}
		return explain(err)
	}

	if timer.Degraded {
		fmt.Println("Backend unreachable, timer running locally")
	}
	fmt.Printf("Timer started at %s (%s)\n", timer.StartedAt.Local().Format("15:04:05"), timer.TrackingType.Label())
	return nil
}

// TimerStopCmd stops the running timer
type TimerStopCmd struct{}

// Run executes the timer stop command
func (t *TimerStopCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}
	ctx := context.Background()

	if _, err := restoreTimer(ctx, cli); err != nil {
		return err
	}

	entry, err := cli.Container.TimerService.Stop(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveTimer) {
			return errors.New("no timer is running")
		}
		return explain(err)
	}

	fmt.Printf("Timer stopped, %s recorded (entry %s)\n", domain.FormatMinutes(entry.Duration), entry.ID)
	return nil
}

// TimerStatusCmd shows the running timer
type TimerStatusCmd struct {
	Watch bool `help:"Keep the clock on screen until interrupted" short:"w"`
}

// Run executes the timer status command
func (t *TimerStatusCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	timer, err := restoreTimer(ctx, cli)
	if err != nil {
		return err
	}
	if timer == nil {
		fmt.Println("No timer running")
		return nil
	}

	svc := cli.Container.TimerService
	fmt.Printf("Project: %s  Task: %s  Tracking: %s\n", timer.ProjectID, timer.TaskID, timer.TrackingType.Label())
	if timer.Degraded {
		fmt.Println("Running locally, not yet recorded on the backend")
	}
	if !t.Watch {
		fmt.Println(svc.Display(time.Now()))
		return nil
	}

	refresh := time.NewTicker(cli.config.RefreshInterval)
	defer refresh.Stop()
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for {
		fmt.Printf("\r%s", svc.Display(time.Now()))
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-refresh.C:
			// picks up a stop issued by another process
			if timer, err := restoreTimer(ctx, cli); err != nil {
				return err
			} else if timer == nil {
				fmt.Println("\nTimer stopped")
				return nil
			}
		case <-tick.C:
		}
	}
}

// TimerManualCmd records a completed entry
type TimerManualCmd struct {
	Billable    bool   `help:"Mark the entry billable"`
	Description string `help:"What you worked on"`
	Duration    string `help:"Time spent as HH:MM or HH:MM:SS" required:""`
	NewTask     string `help:"Create a task with this name" xor:"task"`
	Project     string `help:"Project ID" required:""`
	Task        string `help:"Task ID" xor:"task"`
	Tracking    string `help:"Tracking type: hourly, daily, weekly or monthly (default from settings)"`
}

// Run executes the timer manual command
func (t *TimerManualCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}
	ctx := context.Background()

	if running, err := restoreTimer(ctx, cli); err != nil {
		return err
	} else if running != nil {
		return fmt.Errorf("a timer is already running since %s, run 'punch timer stop' before recording time manually",
			running.StartedAt.Local().Format("15:04"))
	}

	if err := fillSelection(ctx, cli, t.Project, t.Task, t.NewTask); err != nil {
		return err
	}
	svc := cli.Container.TimerService
	svc.SetManualMode(true)
	svc.SetDescription(t.Description)
	svc.SetBillable(t.Billable)
	if t.Tracking != "" {
		tt, err := domain.ParseTrackingType(t.Tracking)
		if err != nil {
			return err
		}
		svc.SetTrackingType(tt)
	}

	entry, err := svc.SaveManual(ctx, t.Duration)
	if err != nil {
		return explain(err)
	}

	fmt.Printf("Recorded %s (entry %s)\n", domain.FormatMinutes(entry.Duration), entry.ID)
	return nil
}
