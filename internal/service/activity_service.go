package service

import (
	"github.com/mergington-high/activities-api/internal/domain"
	"github.com/mergington-high/activities-api/internal/repository"
)

// ActivityService handles activity signup business logic.
type ActivityService struct {
	repo *repository.ActivityRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// ListActivities returns a snapshot of every activity with its current
// participants, in insertion order.
func (s *ActivityService) ListActivities() *domain.Roster {
	return s.repo.List()
}

// SignUp registers email for the named activity. Domain sentinel errors pass
// through unwrapped so callers can match them with errors.Is.
func (s *ActivityService) SignUp(activityName, email string) error {
	return s.repo.SignUp(activityName, email)
}

// Unregister removes email from the named activity. Domain sentinel errors
// pass through unwrapped so callers can match them with errors.Is.
func (s *ActivityService) Unregister(activityName, email string) error {
	return s.repo.Unregister(activityName, email)
}
