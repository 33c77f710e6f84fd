package agecalc

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/mohammadusama1497-dot/Age-Calculator/internal/config"
)

// BuildBirthdayEvent renders a single-event iCalendar for the person's next
// birthday relative to now. formatSummary lets the UI inject a localized
// summary; when nil, a plain fallback is used. The UID is derived
// deterministically from the name and birth date so re-exports replace the
// same event in calendar clients instead of duplicating it.
func BuildBirthdayEvent(name string, birth, now time.Time, formatSummary func(name string, age int) string) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	next, ageNext := NextBirthday(now, birth)

	summary := fmt.Sprintf(config.FallbackSummaryAge, name, ageNext)
	if formatSummary != nil {
		summary = formatSummary(name, ageNext)
	}

	input := fmt.Sprintf(config.FormatHashInput, name, birth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, next.Year(), config.ICalDomain))
	event.Props.SetText(config.PropSummary, summary)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())
	event.Props.Set(dtStamp)

	// Full-day event: value=DATE, no time component.
	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(next)
	event.Props.Set(dtStart)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}
