package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/service"
)

type BicyclesCmd struct{}

func (b *BicyclesCmd) Run(ctx context.Context, globals *Globals) error {
	rt, err := globals.open(ctx)
	if err != nil {
		return err
	}
	if err := rt.require(domain.RoleAdmin); err != nil {
		return err
	}

	bikes, err := service.NewBicycleService(rt.repos.Bicycles).List(rt.ctx)
	if err != nil {
		return err
	}
	printBicycles(globals, bikes)
	return nil
}

type RentalCmd struct{}

func (r *RentalCmd) Run(ctx context.Context, globals *Globals) error {
	rt, err := globals.open(ctx)
	if err != nil {
		return err
	}
	if err := rt.require(domain.RoleCustomer); err != nil {
		return err
	}

	rentals := service.NewRentalService(rt.repos.Rentals, rt.repos.Bicycles, rt.logger)
	overview, err := rentals.Overview(rt.ctx, rt.holder.Username())
	if err != nil {
		return err
	}
	if overview.Notice != "" {
		fmt.Fprintln(globals.out(), overview.Notice)
	}
	if c := overview.Current; c != nil {
		fmt.Fprintf(globals.out(), "Current rental %s: bicycle %s, %s\n", c.ID, c.BicycleID, c.Status)
		return nil
	}
	fmt.Fprintln(globals.out(), "No open rental. Available bicycles:")
	printBicycles(globals, overview.Available)
	return nil
}

func printBicycles(globals *Globals, bikes []domain.Bicycle) {
	if len(bikes) == 0 {
		fmt.Fprintln(globals.out(), "No bicycles")
		return
	}
	w := tabwriter.NewWriter(globals.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBRAND\tMODEL\tCATEGORIES\tPRICE/H\tSTATUS")
	for _, b := range bikes {
		categories := make([]string, 0, len(b.Categories))
		for _, c := range b.Categories {
			categories = append(categories, string(c))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\n", b.ID, b.Brand, b.Model, strings.Join(categories, ","), b.HourlyPrice, b.Status)
	}
	_ = w.Flush()
}
