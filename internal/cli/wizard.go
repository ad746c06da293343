// Package cli is the terminal front end: it walks the setup wizard on a
// line-based reader and prints the recommendation cards.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/service"
)

// Wizard is the subset of the wizard service the terminal needs.
type Wizard interface {
	Start(ctx context.Context) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Setup, error)
	SaveLocations(ctx context.Context, id uuid.UUID, form service.LocationForm) (domain.Setup, error)
	SaveOfficeWindow(ctx context.Context, id uuid.UUID, form service.TimeRangeForm) (domain.Setup, error)
	SaveHomeWindow(ctx context.Context, id uuid.UUID, form service.TimeRangeForm) (domain.Setup, error)
	Recommendations(ctx context.Context, setup domain.Setup) ([]service.DirectedRecommendation, error)
}

// ErrInputClosed is returned when input ends before setup is complete.
var ErrInputClosed = errors.New("input closed before setup was complete")

// Session runs one interactive setup.
type Session struct {
	wizard   Wizard
	in       *bufio.Scanner
	out      io.Writer
	useColor bool
}

// NewSession reads answers from in and writes prompts to out.
func NewSession(wizard Wizard, in io.Reader, out io.Writer, useColor bool) *Session {
	return &Session{wizard: wizard, in: bufio.NewScanner(in), out: out, useColor: useColor}
}

// Run asks for each missing answer in wizard order, re-asking after a
// rejected one, then prints the dashboard cards.
func (s *Session) Run(ctx context.Context) error {
	id, err := s.wizard.Start(ctx)
	if err != nil {
		return fmt.Errorf("cli.Session.Run: %w", err)
	}

	fmt.Fprintln(s.out, "CommutePro")
	fmt.Fprintln(s.out, "Your smart commute timing assistant for Bengaluru")

	for {
		setup, err := s.wizard.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("cli.Session.Run: %w", err)
		}

		switch setup.Step() {
		case domain.StepNoLocations:
			err = s.askLocations(ctx, id)
		case domain.StepNoOfficeWindow:
			err = s.askWindow(service.NewOfficeHoursForm(nil), func(f service.TimeRangeForm) error {
				_, err := s.wizard.SaveOfficeWindow(ctx, id, f)
				return err
			})
		case domain.StepNoHomeWindow:
			err = s.askWindow(service.NewHomeHoursForm(nil), func(f service.TimeRangeForm) error {
				_, err := s.wizard.SaveHomeWindow(ctx, id, f)
				return err
			})
		default:
			recs, err := s.wizard.Recommendations(ctx, setup)
			if err != nil {
				return fmt.Errorf("cli.Session.Run: %w", err)
			}
			fmt.Fprintf(s.out, "\n%s → %s\n\n", setup.Locations.Home, setup.Locations.Office)
			PrintCards(s.out, recs, s.useColor)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) askLocations(ctx context.Context, id uuid.UUID) error {
	s.section("Setup Your Commute", "Enter your home and office locations to get started")
	for {
		home, err := s.ask("Home Location")
		if err != nil {
			return err
		}
		office, err := s.ask("Office Location")
		if err != nil {
			return err
		}
		_, err = s.wizard.SaveLocations(ctx, id, service.LocationForm{Home: home, Office: office})
		if !s.rejected(err) {
			return err
		}
	}
}

func (s *Session) askWindow(form service.TimeRangeForm, save func(service.TimeRangeForm) error) error {
	s.section(form.Title, form.Subtitle)
	for {
		start, err := s.ask("From (HH:MM)")
		if err != nil {
			return err
		}
		end, err := s.ask("To (HH:MM)")
		if err != nil {
			return err
		}
		err = save(form.WithTimes(start, end))
		if !s.rejected(err) {
			return err
		}
	}
}

// rejected prints a validation failure and reports whether to ask again.
func (s *Session) rejected(err error) bool {
	if err == nil || !errors.Is(err, domain.ErrValidation) {
		return false
	}
	c := color.New(color.FgRed)
	if !s.useColor {
		c.DisableColor()
	}
	c.Fprintf(s.out, "✗ %s\n", service.ValidationText(err))
	return true
}

func (s *Session) section(title, subtitle string) {
	fmt.Fprintf(s.out, "\n%s\n%s\n", title, subtitle)
}

func (s *Session) ask(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("cli.Session.ask: %w", err)
		}
		return "", ErrInputClosed
	}
	return s.in.Text(), nil
}
