package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mergington-high/activities-api/internal/domain"
)

// ActivityHandler handles activity-related HTTP requests.
type ActivityHandler struct {
	activityService ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivities handles GET /activities.
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.activityService.ListActivities())
}

// SignUp handles POST /activities/:activity_name/signup.
//
// The email is read verbatim from the query string: empty strings, markup,
// and malformed addresses are all legal values. Only a request missing the
// email key entirely is rejected.
func (h *ActivityHandler) SignUp(c *gin.Context) {
	activityName := c.Param("activity_name")

	email, ok := c.GetQuery("email")
	if !ok {
		BadRequest(c, "email parameter is required")
		return
	}

	if err := h.activityService.SignUp(activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			NotFound(c, "Activity not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadySignedUp) {
			BadRequest(c, "Student is already signed up")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

// Unregister handles DELETE /activities/:activity_name/unregister.
func (h *ActivityHandler) Unregister(c *gin.Context) {
	activityName := c.Param("activity_name")

	email, ok := c.GetQuery("email")
	if !ok {
		BadRequest(c, "email parameter is required")
		return
	}

	if err := h.activityService.Unregister(activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			NotFound(c, "Activity not found")
			return
		}
		if errors.Is(err, domain.ErrNotSignedUp) {
			BadRequest(c, "Student is not signed up for this activity")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}

// Root handles GET / by redirecting to the static landing page.
func Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
}

// HealthCheck handles GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
