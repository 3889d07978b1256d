package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/punch/internal/domain"
)

// ProjectsCmd lists projects
type ProjectsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the projects command
func (p *ProjectsCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	projects, err := cli.Container.CatalogService.Projects(context.Background())
	if err != nil {
		return explain(err)
	}

	if p.Format == "json" {
		return printJSON(projects)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLIENT\tSTATUS")
	for _, project := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", project.ID, project.Name, orDash(project.Client), orDash(project.Status))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d projects\n", len(projects))
	return nil
}

// TasksCmd lists or creates tasks
type TasksCmd struct {
	Add  TasksAddCmd  `cmd:"add" help:"Create a task in a project"`
	List TasksListCmd `cmd:"list" help:"List the tasks of a project" default:"withargs"`
}

// TasksListCmd lists the tasks of a project
type TasksListCmd struct {
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Project string `help:"Project ID" required:""`
}

// Run executes the tasks list command
func (t *TasksListCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	tasks, err := cli.Container.CatalogService.Tasks(context.Background(), t.Project)
	if err != nil {
		return explain(err)
	}

	if t.Format == "json" {
		return printJSON(tasks)
	}
	printTasks(tasks)
	return nil
}

func printTasks(tasks []domain.Task) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRIORITY\tSTATUS")
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", task.ID, task.Name, orDash(task.Priority), orDash(task.Status))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d tasks\n", len(tasks))
}

// TasksAddCmd creates a task
type TasksAddCmd struct {
	Name    string `help:"Task name" required:""`
	Project string `help:"Project ID" required:""`
}

// Run executes the tasks add command
func (t *TasksAddCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	task, err := cli.Container.CatalogService.CreateTask(context.Background(), t.Project, t.Name)
	if err != nil {
		return explain(err)
	}

	fmt.Printf("Task '%s' created (%s)\n", task.Name, task.ID)
	return nil
}
