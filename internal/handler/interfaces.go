package handler

import (
	"github.com/mergington-high/activities-api/internal/domain"
)

// ActivityServiceInterface defines the interface for roster operations.
type ActivityServiceInterface interface {
	ListActivities() *domain.Roster
	SignUp(activityName, email string) error
	Unregister(activityName, email string) error
}
