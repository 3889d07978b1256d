package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

// TeamCmd manages the team roster (admins and managers)
type TeamCmd struct {
	Add    TeamAddCmd    `cmd:"add" help:"Add a team member"`
	Del    TeamDelCmd    `cmd:"del" help:"Remove a team member"`
	List   TeamListCmd   `cmd:"list" help:"List team members" default:"withargs"`
	Update TeamUpdateCmd `cmd:"update" help:"Update a team member"`
}

// TeamListCmd lists team members
type TeamListCmd struct {
	Format   string        `help:"Output format: table or json" enum:"table,json" default:"table"`
	Interval time.Duration `help:"Refresh interval in watch mode (default from settings)"`
	Watch    bool          `help:"Refresh the list until interrupted" short:"w"`
}

// Run executes the team list command
func (t *TeamListCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	team := cli.Container.TeamService
	members, err := team.List(ctx)
	if err != nil {
		return explain(err)
	}

	if t.Format == "json" {
		return printJSON(members)
	}
	printTeam(members)
	if !t.Watch {
		return nil
	}

	interval := t.Interval
	if interval <= 0 {
		interval = cli.config.RefreshInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := team.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logging.Logger.Warn("Team refresh failed", "error", err)
				fmt.Fprintf(os.Stderr, "Warning: %v\n", explain(err))
				continue
			}
			fmt.Printf("\n-- %s --\n", time.Now().Format("15:04:05"))
			printTeam(team.Members())
		}
	}
}

func printTeam(members []domain.TeamMember) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tDEPARTMENT\tPOSITION\tACTIVE")
	for _, m := range members {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Name, m.Email, m.Role, orDash(m.Department), orDash(m.Position), yesNo(m.IsActive))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d members\n", len(members))
}

// TeamAddCmd adds a team member
type TeamAddCmd struct {
	Department string `help:"Department"`
	Email      string `help:"Email" required:""`
	Name       string `help:"Full name" required:""`
	Password   string `help:"Initial password" env:"PUNCH_MEMBER_PASSWORD"`
	Phone      string `help:"Phone number"`
	Position   string `help:"Position"`
	Role       string `help:"Role" enum:"employee,manager,admin" default:"employee"`
}

// Run executes the team add command
func (t *TeamAddCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	member, err := cli.Container.TeamService.Add(context.Background(), ports.TeamMemberRequest{
		Department: t.Department,
		Email:      t.Email,
		Name:       t.Name,
		Password:   t.Password,
		Phone:      t.Phone,
		Position:   t.Position,
		Role:       t.Role,
	})
	if err != nil {
		return explain(err)
	}

	fmt.Printf("Member '%s' added (%s)\n", member.Name, member.ID)
	return nil
}

// TeamUpdateCmd updates a team member
type TeamUpdateCmd struct {
	Active     string `help:"Active flag: yes or no"`
	Department string `help:"New department"`
	Email      string `help:"New email"`
	ID         string `arg:"" help:"Member ID"`
	Name       string `help:"New name"`
	Phone      string `help:"New phone number"`
	Position   string `help:"New position"`
	Role       string `help:"New role: employee, manager or admin"`
}

// Run executes the team update command
func (t *TeamUpdateCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	req := ports.TeamMemberRequest{
		Department: t.Department,
		Email:      t.Email,
		Name:       t.Name,
		Phone:      t.Phone,
		Position:   t.Position,
		Role:       t.Role,
	}
	switch t.Active {
	case "":
	case "yes", "true":
		active := true
		req.IsActive = &active
	case "no", "false":
		active := false
		req.IsActive = &active
	default:
		return fmt.Errorf("invalid --active %q, expected yes or no", t.Active)
	}

	member, err := cli.Container.TeamService.Update(context.Background(), t.ID, req)
	if err != nil {
		return explain(err)
	}

	fmt.Printf("Member '%s' updated\n", member.Name)
	return nil
}

// TeamDelCmd removes a team member
type TeamDelCmd struct {
	ID    string `arg:"" help:"Member ID"`
	Force bool   `help:"Skip confirmation" short:"f"`
}

// Run executes the team del command
func (t *TeamDelCmd) Run(cli *CLI) error {
	if _, err := requireUser(cli); err != nil {
		return err
	}

	if !t.Force {
		fmt.Printf("Remove member %s? (y/N): ", t.ID)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.TeamService.Delete(context.Background(), t.ID); err != nil {
		return explain(err)
	}

	fmt.Printf("Member %s removed\n", t.ID)
	return nil
}
