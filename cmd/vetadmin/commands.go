package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"vetadmin/internal/billing"
	"vetadmin/internal/domain/entity"
	"vetadmin/internal/util"
)

func runSubcommand(ctx context.Context, c *clients, name string, args []string) error {
	switch name {
	case "login":
		return runLogin(ctx, c, args)
	case "logout":
		return runLogout(c)
	case "whoami":
		return runWhoami(c)
	case "owners":
		return runOwners(ctx, c, args)
	case "appointments":
		return runAppointments(ctx, c, args)
	case "invoice":
		return runInvoice(ctx, c, args)
	case "labreport":
		return runLabReport(ctx, c, args)
	case "notifications":
		return runNotifications(ctx, c, args)
	default:
		printUsage()

		return errors.Errorf("unknown command: %s", name)
	}
}

func runLogin(ctx context.Context, c *clients, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := cmd.String("email", "", "Account email (also used to look up the clinic)")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("login requires -email")
	}

	clinic, err := c.Auth.LookupClinic(ctx, *email)
	if err != nil {
		return errors.Wrap(err, "look up clinic")
	}
	fmt.Printf("Clinic: %s\n", clinic.Name)

	password, err := readPassword()
	if err != nil {
		return err
	}

	user, err := c.Auth.Login(ctx, entity.LoginRequest{
		Email:    *email,
		Password: password,
		ClinicID: clinic.ID.String(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Signed in as %s (%s)\n", user.FullName(), user.RoleName)

	return nil
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	return string(raw), nil
}

func runLogout(c *clients) error {
	if err := c.Auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out")

	return nil
}

func runWhoami(c *clients) error {
	if !c.Session.Authenticated() {
		fmt.Println("Not signed in")

		return nil
	}

	user := c.Session.User()
	permissions := c.Session.Permissions()
	sort.Strings(permissions)

	fmt.Printf("User:        %s <%s>\n", user.FullName(), user.Email)
	fmt.Printf("Role:        %s\n", user.RoleName)
	fmt.Printf("Clinic:      %s\n", c.Session.ClinicID())
	fmt.Printf("Permissions: %s\n", strings.Join(permissions, ", "))

	return nil
}

func runOwners(ctx context.Context, c *clients, args []string) error {
	cmd := flag.NewFlagSet("owners", flag.ExitOnError)
	page := cmd.Int("page", 0, "Zero-based page number")
	size := cmd.Int("size", 0, "Page size (0 uses the configured default)")
	lastName := cmd.String("last-name", "", "Search by last name instead of listing")
	phone := cmd.String("phone", "", "Search by phone instead of listing")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *size == 0 {
		*size = c.Config.API.DefaultPageSize
	}

	var owners []entity.Owner
	switch {
	case *lastName != "":
		found, err := c.Owners.SearchByLastName(ctx, *lastName)
		if err != nil {
			return err
		}
		owners = found
	case *phone != "":
		found, err := c.Owners.SearchByPhone(ctx, *phone)
		if err != nil {
			return err
		}
		owners = found
	default:
		result, err := c.Owners.List(ctx, *page, *size)
		if err != nil {
			return err
		}
		owners = result.Content
		fmt.Printf("Page %d/%d (%d owners total)\n", result.Number+1, result.TotalPages, result.TotalElements)
	}

	for _, owner := range owners {
		fmt.Printf("%s  %-24s %-16s %s\n", owner.ID, owner.LastName+", "+owner.FirstName, owner.Phone, owner.Email)
	}

	return nil
}

func runAppointments(ctx context.Context, c *clients, args []string) error {
	cmd := flag.NewFlagSet("appointments", flag.ExitOnError)
	from := cmd.String("from", "", "Range start, YYYY-MM-DD (default today)")
	to := cmd.String("to", "", "Range end, YYYY-MM-DD (default tomorrow)")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	start, end := dayRange(time.Now())
	if *from != "" {
		parsed, err := time.Parse("2006-01-02", *from)
		if err != nil {
			return errors.Wrap(err, "parse -from")
		}
		start = parsed
	}
	if *to != "" {
		parsed, err := time.Parse("2006-01-02", *to)
		if err != nil {
			return errors.Wrap(err, "parse -to")
		}
		end = parsed
	}

	appointments, err := c.Appointments.ByDateRange(ctx, start, end)
	if err != nil {
		return err
	}

	for _, appt := range appointments {
		fmt.Printf("%s  %-8s %-12s %-20s %-20s %s\n",
			appt.StartTime.Format("2006-01-02 15:04"),
			util.FormatDuration(appt.Duration()),
			appt.Status,
			appt.PetName,
			appt.VetName,
			appt.Reason)
	}

	return nil
}

// dayRange is the default appointments window: local midnight of now's
// day through local midnight of the next.
func dayRange(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return start, start.Add(24 * time.Hour)
}

func runInvoice(ctx context.Context, c *clients, args []string) error {
	cmd := flag.NewFlagSet("invoice", flag.ExitOnError)
	id := cmd.String("id", "", "Invoice id")
	sync := cmd.Bool("sync", false, "Write the recomputed totals back to the server")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	invoiceID, err := uuid.Parse(*id)
	if err != nil {
		return errors.Wrap(err, "invoice requires -id with a valid uuid")
	}

	invoice, err := c.Invoices.Get(ctx, invoiceID)
	if err != nil {
		return err
	}
	items, err := c.InvoiceItems.ByInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}

	fmt.Printf("Invoice %s  %s  %s\n", invoice.InvoiceNumber, invoice.OwnerName, invoice.Status)
	for _, item := range items {
		line := billing.ComputeLine(billing.LineInputFromItem(item))
		fmt.Printf("  %-32s %6.2f x %8.2f  -%5.2f%%  +%5.2f%%  = %10s\n",
			item.Description, item.Quantity, item.UnitPrice,
			item.DiscountPercent, item.TaxRate, line.LineTotal.StringFixed(2))
	}

	totals := billing.ComputeTotals(items)
	fmt.Printf("Subtotal: %s\n", totals.Subtotal.StringFixed(2))
	fmt.Printf("Discount: %s\n", totals.DiscountAmount.StringFixed(2))
	fmt.Printf("Tax:      %s\n", totals.TaxAmount.StringFixed(2))
	fmt.Printf("Total:    %s %s\n", totals.GrandTotal.StringFixed(2), invoice.Currency)

	if *sync {
		if _, err := c.Invoices.SyncTotals(ctx, c.InvoiceItems, invoiceID); err != nil {
			return errors.Wrap(err, "sync totals")
		}
		fmt.Println("Totals synced")
	}

	return nil
}

func runLabReport(ctx context.Context, c *clients, args []string) error {
	cmd := flag.NewFlagSet("labreport", flag.ExitOnError)
	id := cmd.String("id", "", "Lab report id")
	output := cmd.String("output", "", "File to write the PDF to (default <id>.pdf)")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	reportID, err := uuid.Parse(*id)
	if err != nil {
		return errors.Wrap(err, "labreport requires -id with a valid uuid")
	}

	data, contentType, err := c.LabReports.DownloadFile(ctx, reportID)
	if err != nil {
		return err
	}

	path := *output
	if path == "" {
		path = reportID.String() + ".pdf"
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write file")
	}

	fmt.Printf("Wrote %s (%s, %s)\n", path, util.FormatBytes(int64(len(data))), contentType)

	return nil
}

func runNotifications(ctx context.Context, c *clients, args []string) error {
	cmd := flag.NewFlagSet("notifications", flag.ExitOnError)
	page := cmd.Int("page", 0, "Zero-based page number")
	size := cmd.Int("size", 0, "Page size (0 uses the configured default)")
	markAll := cmd.Bool("read-all", false, "Mark the whole inbox as read")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *size == 0 {
		*size = c.Config.API.DefaultPageSize
	}

	if *markAll {
		if err := c.Notifications.MarkAllRead(ctx); err != nil {
			return err
		}
		fmt.Println("Inbox marked read")

		return nil
	}

	unread, err := c.Notifications.MyUnreadCount(ctx)
	if err != nil {
		return err
	}
	result, err := c.Notifications.My(ctx, *page, *size)
	if err != nil {
		return err
	}

	fmt.Printf("%d unread\n", unread)
	for _, n := range result.Content {
		marker := " "
		if n.Unread() {
			marker = "*"
		}
		fmt.Printf("%s %s  %-20s %s\n", marker, n.CreatedAt.Format("2006-01-02 15:04"), n.Title, n.Message)
	}

	return nil
}
