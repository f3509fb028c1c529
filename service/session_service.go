package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"compound-interest/domain"
	"compound-interest/repository"
)

// InvalidInputMessage is shown to users when a calculation is rejected.
const InvalidInputMessage = "Please enter valid positive values for all fields."

// SessionService owns the presentation state of each browser session. The
// projection engine itself holds no state.
type SessionService struct {
	repo       repository.SessionRepository
	projection *ProjectionService
	now        func() time.Time
}

func NewSessionService(repo repository.SessionRepository, projection *ProjectionService) *SessionService {
	return &SessionService{
		repo:       repo,
		projection: projection,
		now:        time.Now,
	}
}

// Open returns the stored session for id, or a new one in the yearly view
// when id is empty or unknown.
func (s *SessionService) Open(ctx context.Context, id string) (domain.Session, error) {
	if id != "" {
		session, ok, err := s.repo.Get(ctx, id)
		if err != nil {
			log.Printf("Warning: failed to load session %s: %v", id, err)
		} else if ok {
			return session, nil
		}
	}

	session := domain.Session{
		ID:           uuid.NewString(),
		View:         domain.ViewYearly,
		SelectedYear: 1,
	}
	return session, s.save(ctx, &session)
}

// Calculate replaces the session Ledger with a fresh projection. When the
// input is rejected the previous Ledger is kept and the error is returned
// along with the session.
func (s *SessionService) Calculate(
	ctx context.Context,
	id string,
	input domain.ProjectionInput,
) (domain.Session, error) {

	session, err := s.Open(ctx, id)
	if err != nil {
		return session, err
	}

	ledger, err := s.projection.Calculate(ctx, input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			session.Error = InvalidInputMessage
		} else {
			session.Error = "The projection could not be calculated."
		}
		if saveErr := s.save(ctx, &session); saveErr != nil {
			log.Printf("Warning: failed to save session %s: %v", session.ID, saveErr)
		}
		return session, err
	}

	session.Input = input
	session.Ledger = &ledger
	session.Error = ""
	session.SelectedYear = clampYear(session.SelectedYear, ledger.Years())

	return session, s.save(ctx, &session)
}

// SwitchView changes between the yearly and monthly tables.
func (s *SessionService) SwitchView(ctx context.Context, id string, view domain.View) (domain.Session, error) {
	if view != domain.ViewYearly && view != domain.ViewMonthly {
		return domain.Session{}, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, view)
	}

	session, err := s.Open(ctx, id)
	if err != nil {
		return session, err
	}
	session.View = view
	return session, s.save(ctx, &session)
}

// SelectYear picks the year shown by the monthly table. Years outside the
// current Ledger fall back to year 1.
func (s *SessionService) SelectYear(ctx context.Context, id string, year int) (domain.Session, error) {
	session, err := s.Open(ctx, id)
	if err != nil {
		return session, err
	}

	years := 0
	if session.Ledger != nil {
		years = session.Ledger.Years()
	}
	session.SelectedYear = clampYear(year, years)
	return session, s.save(ctx, &session)
}

func (s *SessionService) save(ctx context.Context, session *domain.Session) error {
	session.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, *session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func clampYear(year, years int) int {
	if year < 1 || year > years {
		return 1
	}
	return year
}
