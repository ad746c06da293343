// Package domain contains the core data types for the CommutePro application
// and the setup wizard state machine.
// This package has no dependencies on the rest of the module and is imported
// by every other internal package (repo, service, views, handler, cli).
package domain

// LocationData holds the user's two commute endpoints.
// Both fields are non-blank and already trimmed once a LocationData exists;
// the location form is the only producer.
type LocationData struct {
	Home   string `json:"home"`
	Office string `json:"office"`
}

// TimeRange is a same-day window of times of day in "HH:MM" form.
// Start sorts strictly before End; for zero-padded 24-hour values the string
// order is also the numeric order.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Setup is the whole wizard state for one user. Nil fields are unanswered
// steps. It is a plain value: transitions return a modified copy.
type Setup struct {
	Locations    *LocationData `json:"locations,omitempty"`
	OfficeWindow *TimeRange    `json:"office_window,omitempty"`
	HomeWindow   *TimeRange    `json:"home_window,omitempty"`

	// ShowSetup keeps the setup view on screen after every step has been
	// answered. Set by the Settings action, cleared by View Dashboard and by
	// saving the home window.
	ShowSetup bool `json:"show_setup"`
}

// Step is the view the wizard is currently in.
type Step string

const (
	StepNoLocations    Step = "no_locations"
	StepNoOfficeWindow Step = "no_office_window"
	StepNoHomeWindow   Step = "no_home_window"
	StepSetupComplete  Step = "setup_complete"
	StepDashboard      Step = "dashboard"
)

// Complete reports whether all three answers are present.
func (s Setup) Complete() bool {
	return s.Locations != nil && s.OfficeWindow != nil && s.HomeWindow != nil
}

// IsSetupView reports whether the setup page (rather than the dashboard)
// should be shown: any answer is missing, or the override flag is set.
func (s Setup) IsSetupView() bool {
	return !s.Complete() || s.ShowSetup
}

// Step maps the state onto the wizard step. Steps are gated in order, so a
// missing location wins over a missing time window.
func (s Setup) Step() Step {
	switch {
	case s.Locations == nil:
		return StepNoLocations
	case s.OfficeWindow == nil:
		return StepNoOfficeWindow
	case s.HomeWindow == nil:
		return StepNoHomeWindow
	case s.ShowSetup:
		return StepSetupComplete
	default:
		return StepDashboard
	}
}

// SaveLocations replaces the saved locations.
func (s Setup) SaveLocations(loc LocationData) Setup {
	s.Locations = &loc
	return s
}

// SaveOfficeWindow replaces the office-arrival window.
func (s Setup) SaveOfficeWindow(tr TimeRange) Setup {
	s.OfficeWindow = &tr
	return s
}

// SaveHomeWindow replaces the home-departure window and leaves setup.
func (s Setup) SaveHomeWindow(tr TimeRange) Setup {
	s.HomeWindow = &tr
	s.ShowSetup = false
	return s
}

// OpenSettings re-enters the setup view. Prior answers are kept so the forms
// come back pre-filled.
func (s Setup) OpenSettings() Setup {
	s.ShowSetup = true
	return s
}

// ViewDashboard leaves the setup view. It has no effect on the step until
// every answer is present.
func (s Setup) ViewDashboard() Setup {
	s.ShowSetup = false
	return s
}

// Clone returns a copy that shares no pointers with s.
func (s Setup) Clone() Setup {
	if s.Locations != nil {
		loc := *s.Locations
		s.Locations = &loc
	}
	if s.OfficeWindow != nil {
		tr := *s.OfficeWindow
		s.OfficeWindow = &tr
	}
	if s.HomeWindow != nil {
		tr := *s.HomeWindow
		s.HomeWindow = &tr
	}
	return s
}
