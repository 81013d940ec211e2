package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"

	"vetadmin/config"
	"vetadmin/internal/api"
	"vetadmin/internal/gateway"
	"vetadmin/internal/infra/credfile"
	logs "vetadmin/internal/infra/log"
	"vetadmin/internal/session"
)

// Supported subcommands:
// - login:         Sign in to a clinic
// - logout:        Drop the local session
// - whoami:        Show the signed-in user and capabilities
// - owners:        List or search pet owners
// - appointments:  List appointments in a date range
// - invoice:       Show an invoice with recomputed totals
// - labreport:     Download a lab report's result PDF
// - notifications: Show the notification inbox

type clients struct {
	fx.In

	Config        *config.Config
	Session       *session.Manager
	Auth          *api.Auth
	Owners        *api.Owners
	Appointments  *api.Appointments
	Invoices      *api.Invoices
	InvoiceItems  *api.InvoiceItems
	LabReports    *api.LabReports
	Notifications *api.Notifications
}

func main() {
	var c clients
	app := fx.New(
		injectInfra(),
		injectClient(),
		fx.Populate(&c),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runSubcommand(ctx, &c, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		credfile.New,
		session.NewManager,
		gateway.New,
	)
}

func injectClient() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewAuth,
			api.NewOwners,
			api.NewPets,
			api.NewSpeciesCatalog,
			api.NewBreeds,
			api.NewAppointments,
			api.NewClinicLocations,
			api.NewClinics,
			api.NewMedicalRecords,
			api.NewTreatments,
			api.NewPrescriptions,
			api.NewVaccinations,
			api.NewLabReports,
			api.NewServices,
			api.NewInvoices,
			api.NewInvoiceItems,
			api.NewInventoryItems,
			api.NewInventoryTransactions,
			api.NewUsers,
			api.NewRoles,
			api.NewNotifications,
		),
	)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: vetadmin <command> [options]

Commands:
  login          Sign in to a clinic
  logout         Drop the local session
  whoami         Show the signed-in user and capabilities
  owners         List or search pet owners
  appointments   List appointments in a date range
  invoice        Show an invoice with recomputed totals
  labreport      Download a lab report's result PDF
  notifications  Show the notification inbox

Run 'vetadmin <command> -h' for command options.`)
}
