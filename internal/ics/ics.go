// Package ics renders a single-event calendar invite for a booking
// confirmation. The output layout is frozen for client compatibility:
// naive local timestamps, LF line endings, and no escaping of embedded
// text against ICS special characters.
package ics

import (
	"fmt"
	"strings"
	"time"
)

const (
	businessName = "Alankritha Naturals"
	location     = "Alankritha Naturals, Hyderabad"
	prodID       = "-//Alankritha Naturals//Booking//EN"

	stampLayout = "20060102T150405"
)

// Event is the subset of a booking the invite is built from.
type Event struct {
	Name    string
	Phone   string
	Email   string
	Service string
	Notes   string
	Start   time.Time
}

// Build renders the VCALENDAR document. Every field is a pure function of
// the event except DTSTAMP, which is the UTC wall clock at formatting
// time. The UID is derived from the start timestamp and the email, so the
// same booking always yields the same UID.
func Build(ev Event) string {
	start := ev.Start
	end := start.Add(time.Hour)

	startStr := start.Format(stampLayout)
	endStr := end.Format(stampLayout)
	nowStr := time.Now().UTC().Format(stampLayout) + "Z"

	uid := fmt.Sprintf("booking-%s-%s", startStr, ev.Email)
	summary := fmt.Sprintf("Appointment: %s - %s", ev.Service, businessName)
	description := fmt.Sprintf("Name: %s\\nPhone: %s\\nNotes: %s", ev.Name, ev.Phone, ev.Notes)

	var sb strings.Builder
	sb.WriteString("BEGIN:VCALENDAR\n")
	sb.WriteString("VERSION:2.0\n")
	sb.WriteString("PRODID:" + prodID + "\n")
	sb.WriteString("BEGIN:VEVENT\n")
	sb.WriteString("UID:" + uid + "\n")
	sb.WriteString("DTSTAMP:" + nowStr + "\n")
	sb.WriteString("DTSTART:" + startStr + "\n")
	sb.WriteString("DTEND:" + endStr + "\n")
	sb.WriteString("SUMMARY:" + summary + "\n")
	sb.WriteString("DESCRIPTION:" + description + "\n")
	sb.WriteString("LOCATION:" + location + "\n")
	sb.WriteString("END:VEVENT\n")
	sb.WriteString("END:VCALENDAR\n")
	return sb.String()
}
