package views

import (
	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/service"
)

// Form actions. The handler package registers its routes on the same paths.
const (
	ActionLocations   = "/setup/locations"
	ActionOfficeHours = "/setup/office-hours"
	ActionHomeHours   = "/setup/home-hours"
	ActionSettings    = "/settings"
	ActionDashboard   = "/dashboard"
)

// LocationFormView is the view model for the location form.
type LocationFormView struct {
	Action  string
	Home    string
	Office  string
	CanSave bool
	Error   string
}

// TimeRangeFormView is the view model for one time range picker.
type TimeRangeFormView struct {
	Action   string
	Title    string
	Subtitle string
	Icon     string
	Start    string
	End      string
	CanSave  bool
	// Message is the inline ordering/format message.
	Message string
	// Error is a server-side rejection not already covered by Message.
	Error string
}

// SetupPage is the view model for the setup wizard page.
type SetupPage struct {
	Step     domain.Step
	Location *LocationFormView
	Office   *TimeRangeFormView
	Home     *TimeRangeFormView
	// ShowViewDashboard is set once every answer exists.
	ShowViewDashboard bool
	// DashboardAction is where the "View Dashboard" form posts.
	DashboardAction string
}

// DashboardPage is the view model for the dashboard.
type DashboardPage struct {
	Home   string
	Office string
	Cards  []Card
	// SettingsAction is where the Settings form posts.
	SettingsAction string
}

// Drafts carries rejected form input back onto the setup page so the user
// sees what they typed next to the error. At most one form is set.
type Drafts struct {
	Location *service.LocationForm
	Office   *service.TimeRangeForm
	Home     *service.TimeRangeForm
	Error    string
}

// NewSetupPage builds the setup page for the current step. Each step shows
// only its own form. Once everything is answered and the user came back
// through Settings, all three forms are shown pre-filled next to "View
// Dashboard" so a single answer can be edited in place; the original web
// client offered only "View Dashboard" in that state.
func NewSetupPage(setup domain.Setup, d Drafts) *SetupPage {
	step := setup.Step()
	page := &SetupPage{
		Step:              step,
		ShowViewDashboard: setup.Complete(),
		DashboardAction:   ActionDashboard,
	}

	showAll := step == domain.StepSetupComplete || step == domain.StepDashboard
	if step == domain.StepNoLocations || showAll || d.Location != nil {
		page.Location = locationView(setup, d)
	}
	if step == domain.StepNoOfficeWindow || showAll || d.Office != nil {
		page.Office = timeRangeView(ActionOfficeHours, service.NewOfficeHoursForm(setup.OfficeWindow), d.Office, d.Error)
	}
	if step == domain.StepNoHomeWindow || showAll || d.Home != nil {
		page.Home = timeRangeView(ActionHomeHours, service.NewHomeHoursForm(setup.HomeWindow), d.Home, d.Error)
	}
	return page
}

func locationView(setup domain.Setup, d Drafts) *LocationFormView {
	form := service.NewLocationForm(setup.Locations)
	var errMsg string
	if d.Location != nil {
		form = *d.Location
		errMsg = d.Error
	}
	return &LocationFormView{
		Action:  ActionLocations,
		Home:    form.Home,
		Office:  form.Office,
		CanSave: form.CanSave(),
		Error:   errMsg,
	}
}

func timeRangeView(action string, form service.TimeRangeForm, draft *service.TimeRangeForm, errMsg string) *TimeRangeFormView {
	if draft != nil {
		form = form.WithTimes(draft.Start, draft.End)
	} else {
		errMsg = ""
	}
	msg := form.ValidationMessage()
	if errMsg == msg {
		errMsg = ""
	}
	return &TimeRangeFormView{
		Action:   action,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Icon:     string(form.Icon),
		Start:    form.Start,
		End:      form.End,
		CanSave:  form.CanSave(),
		Message:  msg,
		Error:    errMsg,
	}
}

// NewDashboardPage builds the dashboard from a complete setup and its
// recommendations.
func NewDashboardPage(setup domain.Setup, recs []service.DirectedRecommendation) *DashboardPage {
	page := &DashboardPage{Cards: make([]Card, 0, len(recs)), SettingsAction: ActionSettings}
	if setup.Locations != nil {
		page.Home = setup.Locations.Home
		page.Office = setup.Locations.Office
	}
	for _, r := range recs {
		page.Cards = append(page.Cards, NewCard(r.Recommendation, r.Direction))
	}
	return page
}
