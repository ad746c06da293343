package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/repo"
)

// WizardService drives one user's setup wizard. Every mutating call loads the
// session, applies a domain transition and stores the result.
type WizardService struct {
	sessions    repo.SessionRepo
	recommender Recommender
}

// NewWizardService constructs a WizardService backed by the provided repo
// and recommendation source.
func NewWizardService(sessions repo.SessionRepo, recommender Recommender) *WizardService {
	return &WizardService{sessions: sessions, recommender: recommender}
}

// Start opens a new session with nothing answered.
func (s *WizardService) Start(ctx context.Context) (uuid.UUID, error) {
	id, err := s.sessions.Create(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.WizardService.Start: %w", err)
	}
	return id, nil
}

// Get returns the current setup for a session.
// Returns domain.ErrNotFound if the session is unknown or expired.
func (s *WizardService) Get(ctx context.Context, id uuid.UUID) (domain.Setup, error) {
	setup, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domain.Setup{}, fmt.Errorf("service.WizardService.Get: %w", err)
	}
	return setup, nil
}

// SaveLocations validates the location form and stores the trimmed result.
// Returns domain.ErrValidation if either address is blank.
func (s *WizardService) SaveLocations(ctx context.Context, id uuid.UUID, form LocationForm) (domain.Setup, error) {
	loc, err := form.Save()
	if err != nil {
		return domain.Setup{}, err
	}
	return s.apply(ctx, id, "SaveLocations", func(setup domain.Setup) (domain.Setup, error) {
		return setup.SaveLocations(loc), nil
	})
}

// SaveOfficeWindow validates and stores the office-arrival window.
// Returns domain.ErrValidation for a bad window or when locations have not
// been saved yet.
func (s *WizardService) SaveOfficeWindow(ctx context.Context, id uuid.UUID, form TimeRangeForm) (domain.Setup, error) {
	tr, err := form.Save()
	if err != nil {
		return domain.Setup{}, err
	}
	return s.apply(ctx, id, "SaveOfficeWindow", func(setup domain.Setup) (domain.Setup, error) {
		if setup.Locations == nil {
			return domain.Setup{}, fmt.Errorf("%w: save your locations first", domain.ErrValidation)
		}
		return setup.SaveOfficeWindow(tr), nil
	})
}

// SaveHomeWindow validates and stores the home-departure window, which also
// leaves the setup view. Returns domain.ErrValidation for a bad window or
// when the office window has not been saved yet.
func (s *WizardService) SaveHomeWindow(ctx context.Context, id uuid.UUID, form TimeRangeForm) (domain.Setup, error) {
	tr, err := form.Save()
	if err != nil {
		return domain.Setup{}, err
	}
	return s.apply(ctx, id, "SaveHomeWindow", func(setup domain.Setup) (domain.Setup, error) {
		if setup.Locations == nil || setup.OfficeWindow == nil {
			return domain.Setup{}, fmt.Errorf("%w: save your office hours first", domain.ErrValidation)
		}
		return setup.SaveHomeWindow(tr), nil
	})
}

// OpenSettings re-enters the setup view without discarding answers.
func (s *WizardService) OpenSettings(ctx context.Context, id uuid.UUID) (domain.Setup, error) {
	return s.apply(ctx, id, "OpenSettings", func(setup domain.Setup) (domain.Setup, error) {
		return setup.OpenSettings(), nil
	})
}

// ViewDashboard leaves the setup view.
func (s *WizardService) ViewDashboard(ctx context.Context, id uuid.UUID) (domain.Setup, error) {
	return s.apply(ctx, id, "ViewDashboard", func(setup domain.Setup) (domain.Setup, error) {
		return setup.ViewDashboard(), nil
	})
}

// Recommendations returns one recommendation per direction, office first.
// Returns domain.ErrValidation if setup is incomplete.
func (s *WizardService) Recommendations(ctx context.Context, setup domain.Setup) ([]DirectedRecommendation, error) {
	if !setup.Complete() {
		return nil, fmt.Errorf("%w: setup is not complete", domain.ErrValidation)
	}
	legs := []struct {
		dir    domain.Direction
		window domain.TimeRange
	}{
		{domain.DirectionToOffice, *setup.OfficeWindow},
		{domain.DirectionToHome, *setup.HomeWindow},
	}
	out := make([]DirectedRecommendation, 0, len(legs))
	for _, leg := range legs {
		rec, err := s.recommender.Recommend(ctx, leg.dir, *setup.Locations, leg.window)
		if err != nil {
			return nil, fmt.Errorf("service.WizardService.Recommendations: %w", err)
		}
		out = append(out, DirectedRecommendation{Direction: leg.dir, Recommendation: rec})
	}
	return out, nil
}

// apply runs one load-transition-store cycle. Validation errors from the
// transition are returned unwrapped so handlers can show their text.
func (s *WizardService) apply(ctx context.Context, id uuid.UUID, op string, transition func(domain.Setup) (domain.Setup, error)) (domain.Setup, error) {
	setup, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domain.Setup{}, fmt.Errorf("service.WizardService.%s: %w", op, err)
	}
	next, err := transition(setup)
	if err != nil {
		return domain.Setup{}, err
	}
	if err := s.sessions.Save(ctx, id, next); err != nil {
		return domain.Setup{}, fmt.Errorf("service.WizardService.%s: %w", op, err)
	}
	return next, nil
}
