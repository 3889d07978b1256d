package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/services"
)

// newTaskOption is the task select value that reveals the inline task input
const newTaskOption = "+new"

// ProjectForm is the first step of starting a timer or recording time
type ProjectForm struct {
	formState
	Manual    bool
	ProjectID string
}

// NewProjectForm creates the project picker
func NewProjectForm(projects []domain.Project, current string, manual bool) *ProjectForm {
	pf := &ProjectForm{Manual: manual, ProjectID: current}

	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		label := p.Name
		if p.Client != "" {
			label = fmt.Sprintf("%s (%s)", p.Name, p.Client)
		}
		options = append(options, huh.NewOption(label, p.ID))
	}

	pf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(options...).
				Value(&pf.ProjectID).
				Validate(required("project")),
		),
	)
	return pf
}

func (pf *ProjectForm) Init() tea.Cmd {
	return pf.init()
}

func (pf *ProjectForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return pf, pf.update(msg)
}

func (pf *ProjectForm) View() string {
	return pf.view()
}

// TimerDetailsForm is the second step: task, description, billable,
// tracking type and, in manual mode, the time spent
type TimerDetailsForm struct {
	formState
	Billable     bool
	Description  string
	Duration     string
	InlineTask   string
	Manual       bool
	TaskID       string
	TrackingType domain.TrackingType
}

// NewTimerDetailsForm creates the details step for the tasks of the selected project
func NewTimerDetailsForm(tasks []domain.Task, sel services.Selection) *TimerDetailsForm {
	df := &TimerDetailsForm{
		Billable:     sel.Billable,
		Description:  sel.Description,
		InlineTask:   sel.InlineTask,
		Manual:       sel.ManualMode,
		TaskID:       sel.TaskID,
		TrackingType: sel.TrackingType,
	}
	if df.TrackingType == "" {
		df.TrackingType = domain.TrackingHourly
	}
	if df.InlineTask != "" || len(tasks) == 0 {
		df.TaskID = newTaskOption
	}

	taskOptions := make([]huh.Option[string], 0, len(tasks)+1)
	for _, t := range tasks {
		taskOptions = append(taskOptions, huh.NewOption(t.Name, t.ID))
	}
	taskOptions = append(taskOptions, huh.NewOption("+ New task", newTaskOption))

	trackingOptions := make([]huh.Option[domain.TrackingType], 0, len(domain.TrackingTypes))
	for _, tt := range domain.TrackingTypes {
		trackingOptions = append(trackingOptions, huh.NewOption(tt.Label(), tt))
	}

	details := []huh.Field{
		huh.NewInput().
			Title("Description").
			Placeholder("What are you working on?").
			Value(&df.Description),
		huh.NewConfirm().
			Title("Billable?").
			Affirmative("Yes").
			Negative("No").
			Value(&df.Billable),
		huh.NewSelect[domain.TrackingType]().
			Title("Tracking").
			Options(trackingOptions...).
			Value(&df.TrackingType).
			DescriptionFunc(func() string { return df.TrackingType.Description() }, &df.TrackingType),
	}
	if df.Manual {
		details = append(details, huh.NewInput().
			Title("Time spent").
			Placeholder("HH:MM or HH:MM:SS").
			Value(&df.Duration).
			Validate(func(s string) error {
				_, err := domain.ParseManualDuration(s)
				return err
			}))
	}

	df.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Task").
				Options(taskOptions...).
				Value(&df.TaskID),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("New task name").
				Value(&df.InlineTask).
				Validate(required("task name")),
		).WithHideFunc(func() bool { return df.TaskID != newTaskOption }),
		huh.NewGroup(details...),
	)
	return df
}

func (df *TimerDetailsForm) Init() tea.Cmd {
	return df.init()
}

func (df *TimerDetailsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return df, df.update(msg)
}

func (df *TimerDetailsForm) View() string {
	return df.view()
}

// Apply copies the answers into the timer controller's form state
func (df *TimerDetailsForm) Apply(timer *services.TimerService) error {
	if df.TaskID == newTaskOption {
		timer.SetInlineTask(df.InlineTask)
	} else if err := timer.SelectTask(df.TaskID); err != nil {
		return err
	}
	timer.SetDescription(df.Description)
	timer.SetBillable(df.Billable)
	timer.SetTrackingType(df.TrackingType)
	timer.SetManualMode(df.Manual)
	return nil
}
