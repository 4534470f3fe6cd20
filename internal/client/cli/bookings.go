package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	pb "github.com/dmitrijs2005/bookings/internal/proto"
)

// scheduleLayout is the format accepted for booking times, in local time.
const scheduleLayout = "2006-01-02 15:04"

// History prints the caller's bookings.
func (a *App) History(ctx context.Context) error {
	bookings, err := a.client.History(ctx)
	if err != nil {
		a.printError(err)
		return err
	}

	a.printBookings(bookings)
	return nil
}

// Book prompts for a service and a time and records a booking.
func (a *App) Book(ctx context.Context) error {
	service, err := getSimpleText(a.reader, "Enter service", a.out)
	if err != nil {
		return err
	}

	when, err := getSimpleText(a.reader, "Enter time ("+scheduleLayout+")", a.out)
	if err != nil {
		return err
	}

	scheduledAt, err := time.ParseInLocation(scheduleLayout, when, time.Local)
	if err != nil {
		fmt.Fprintf(a.out, "Error: time must look like %s\n", scheduleLayout)
		return err
	}

	b, err := a.client.CreateBooking(ctx, service, scheduledAt)
	if err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintf(a.out, "Booked %s at %s (id %s)\n", b.GetService(), b.GetScheduledAt().AsTime().Local().Format(scheduleLayout), b.GetId())
	return nil
}

func (a *App) printBookings(bookings []*pb.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSERVICE\tSCHEDULED")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.GetId(), b.GetService(), b.GetScheduledAt().AsTime().Local().Format(scheduleLayout))
	}
	_ = w.Flush()
}
