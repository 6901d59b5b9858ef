package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mmynk/tableplanner/internal/models"
	"github.com/mmynk/tableplanner/internal/seating"
)

type assignOptions struct {
	balance    bool
	randomize  bool
	seed       uint64
	companions string
	output     string
}

func newAssignCmd() *cobra.Command {
	opts := assignOptions{}
	cmd := &cobra.Command{
		Use:   "assign <plan.yaml|plan.json>",
		Short: "Seat every guest and print the resulting plan",
		Long: `Clears all existing seats and assigns guests to tables.

Companions (guests whose guestOf names another guest) are seated next to
or across from their host when the table shape allows it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.balance, "balance", true, "spread guests evenly across tables instead of filling in order")
	f.BoolVar(&opts.randomize, "randomize", false, "shuffle guests instead of seating them alphabetically")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for --randomize (default: time-based)")
	f.StringVar(&opts.companions, "companions", string(seating.PlaceNextTo), "companion placement: next-to, across or none")
	f.StringVarP(&opts.output, "output", "o", "table", "output format: table, yaml or json")
	return cmd
}

func runAssign(cmd *cobra.Command, path string, opts assignOptions) error {
	placement, err := seating.ParsePlacement(opts.companions)
	if err != nil {
		return err
	}
	switch opts.output {
	case "table", "yaml", "json":
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	plan, err := loadPlan(path)
	if err != nil {
		return err
	}

	cfg := seating.Config{
		BalanceGuests: opts.balance,
		Randomize:     opts.randomize,
		Placement:     placement,
		Logger:        slog.Default(),
	}
	if cmd.Flags().Changed("seed") {
		cfg.Rand = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}

	res := seating.Assign(plan.Guests, plan.Tables, cfg)
	plan.Guests, plan.Tables = res.Guests, res.Tables

	out := cmd.OutOrStdout()
	if opts.output == "table" {
		renderSeating(out, plan)
		fmt.Fprintln(out, res.Message)
		return nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), res.Message)
	return writePlan(out, plan, opts.output)
}

// renderSeating prints one row per occupied seat, table by table, followed
// by any guests left without a seat.
func renderSeating(w io.Writer, plan *planFile) {
	guests := make(map[string]*models.Guest, len(plan.Guests))
	for i := range plan.Guests {
		guests[plan.Guests[i].ID] = &plan.Guests[i]
	}

	var rows [][]string
	for _, t := range plan.Tables {
		for _, s := range t.Seats {
			g, ok := guests[s.GuestID]
			if !ok {
				continue
			}
			rows = append(rows, []string{t.Name, strconv.Itoa(s.Position + 1), g.Name, dietLabels(g)})
		}
	}
	for _, g := range plan.Guests {
		if !g.IsAssigned() {
			rows = append(rows, []string{"-", "-", g.Name, dietLabels(&g)})
		}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TABLE", "SEAT", "GUEST", "DIET").
		Rows(rows...)
	fmt.Fprintln(w, tbl.Render())
}

func dietLabels(g *models.Guest) string {
	labels := make([]string, 0, len(g.DietaryRestrictions))
	for _, d := range g.DietaryRestrictions {
		if d != models.DietNone {
			labels = append(labels, d.Label())
		}
	}
	return strings.Join(labels, ", ")
}
