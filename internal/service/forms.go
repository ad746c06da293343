// Package service contains the business logic for CommutePro.
// Forms hold draft input and decide whether it may be saved; WizardService
// applies saved answers to a session's setup through the repo interface.
// No HTML lives here: front ends render forms from the exported state.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/commutepro/internal/domain"
)

// MsgEndBeforeStart is shown under a time range whose end does not come
// after its start.
const MsgEndBeforeStart = "End time must be after start time"

// clockLayout is the 24-hour "HH:MM" form used by <input type="time">.
const clockLayout = "15:04"

// Icon names the glyph a front end draws next to a form title.
type Icon string

const (
	IconMapPin   Icon = "map-pin"
	IconBuilding Icon = "building"
	IconHome     Icon = "home"
)

// ---- location form ---------------------------------------------------------

// LocationForm is the draft state of the home/office address form.
type LocationForm struct {
	Home   string
	Office string
}

// NewLocationForm seeds a form from a previous answer, if any.
func NewLocationForm(initial *domain.LocationData) LocationForm {
	if initial == nil {
		return LocationForm{}
	}
	return LocationForm{Home: initial.Home, Office: initial.Office}
}

// CanSave reports whether the save action is enabled: both addresses are
// non-blank once surrounding whitespace is removed.
func (f LocationForm) CanSave() bool {
	return strings.TrimSpace(f.Home) != "" && strings.TrimSpace(f.Office) != ""
}

// Save returns the trimmed addresses. It never returns a blank field.
func (f LocationForm) Save() (domain.LocationData, error) {
	home := strings.TrimSpace(f.Home)
	office := strings.TrimSpace(f.Office)
	if home == "" {
		return domain.LocationData{}, fmt.Errorf("%w: home location is required", domain.ErrValidation)
	}
	if office == "" {
		return domain.LocationData{}, fmt.Errorf("%w: office location is required", domain.ErrValidation)
	}
	return domain.LocationData{Home: home, Office: office}, nil
}

// ---- time range form -------------------------------------------------------

// TimeRangeForm is the draft state of a start/end time picker. Title,
// Subtitle and Icon are supplied by the caller so one form type serves both
// the office-arrival and home-departure windows.
type TimeRangeForm struct {
	Title    string
	Subtitle string
	Icon     Icon

	Start string
	End   string
}

// NewOfficeHoursForm returns the picker for the office-arrival window.
func NewOfficeHoursForm(initial *domain.TimeRange) TimeRangeForm {
	return newTimeRangeForm("Office Hours", "When would you like to arrive at office?", IconBuilding, initial)
}

// NewHomeHoursForm returns the picker for the home-departure window.
func NewHomeHoursForm(initial *domain.TimeRange) TimeRangeForm {
	return newTimeRangeForm("Home Hours", "When would you like to leave office for home?", IconHome, initial)
}

func newTimeRangeForm(title, subtitle string, icon Icon, initial *domain.TimeRange) TimeRangeForm {
	f := TimeRangeForm{Title: title, Subtitle: subtitle, Icon: icon}
	if initial != nil {
		f.Start = initial.Start
		f.End = initial.End
	}
	return f
}

// WithTimes returns a copy of the form with new draft values.
func (f TimeRangeForm) WithTimes(start, end string) TimeRangeForm {
	f.Start = start
	f.End = end
	return f
}

// CanSave reports whether the save action is enabled.
func (f TimeRangeForm) CanSave() bool {
	_, err := f.Save()
	return err == nil
}

// ValidationMessage is the inline message to show under the form, or "" when
// there is nothing to complain about yet. Nothing is shown while either field
// is still empty.
func (f TimeRangeForm) ValidationMessage() string {
	if f.Start == "" || f.End == "" {
		return ""
	}
	if _, err := f.Save(); err != nil {
		return ValidationText(err)
	}
	return ""
}

// Save returns the window. Start must sort strictly before End.
func (f TimeRangeForm) Save() (domain.TimeRange, error) {
	if f.Start == "" {
		return domain.TimeRange{}, fmt.Errorf("%w: start time is required", domain.ErrValidation)
	}
	if f.End == "" {
		return domain.TimeRange{}, fmt.Errorf("%w: end time is required", domain.ErrValidation)
	}
	if !isClock(f.Start) || !isClock(f.End) {
		return domain.TimeRange{}, fmt.Errorf("%w: times must use the 24-hour HH:MM format", domain.ErrValidation)
	}
	if f.Start >= f.End {
		return domain.TimeRange{}, fmt.Errorf("%w: %s", domain.ErrValidation, MsgEndBeforeStart)
	}
	return domain.TimeRange{Start: f.Start, End: f.End}, nil
}

// isClock reports whether s is a zero-padded 24-hour "HH:MM" time. The
// padding matters: string order only matches time order for fixed width.
func isClock(s string) bool {
	if len(s) != len(clockLayout) {
		return false
	}
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

// ValidationText returns the user-facing part of a validation error, the
// text after "validation error: ", even when err was wrapped again with an
// operation prefix. Other errors are returned verbatim; nil gives "".
func ValidationText(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}
