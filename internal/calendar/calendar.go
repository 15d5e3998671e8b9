// Package calendar exports the birthdays of an address book as iCalendar data.
package calendar

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

var uidNamespace = uuid.MustParse(config.UIDNamespace)

// Export writes one all-day event per record with a birthday for the previous,
// current and next year relative to now, and returns the number of events.
// Years before the person was born are skipped. When trigger is not empty
// (an ISO8601 duration such as "-P1D") each event carries a DISPLAY alarm.
func Export(w io.Writer, records []*book.Record, now time.Time, trigger string) (int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, r := range records {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		for _, e := range createEvents(r.Name().Value(), bd.Date(), now, trigger) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	// An iCalendar object needs at least one component.
	if len(cal.Children) == 0 {
		if _, err := io.WriteString(w, config.StubVCalendar); err != nil {
			return 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
		}
		return 0, nil
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgCalendarDone,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyEvents, len(cal.Children),
	)
	return len(cal.Children), nil
}

// createEvents builds the events of one contact for CurrentYear-1..CurrentYear+1.
func createEvents(name string, birthDate, now time.Time, trigger string) []*ical.Event {
	currentYear := now.Year()
	summary := fmt.Sprintf(config.SummaryFormat, name)

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		uid := uuid.NewSHA1(uidNamespace, fmt.Appendf(nil, "%s|%d", name, y))
		event.Props.SetText(config.PropUID, uid.String())
		event.Props.SetText(config.PropSummary, summary)

		// Go normalizes 29 February to 1 March in non-leap years.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if trigger != "" {
			addAlarm(event, trigger, summary)
		}
		events = append(events, event)
	}
	return events
}

// addAlarm appends a DISPLAY alarm to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
