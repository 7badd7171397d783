package domain

import "slices"

// Activity represents an extracurricular activity offered by the school.
// The activity's name is not stored on the struct; it is the key under which
// the activity lives in a Roster.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// IsSignedUp reports whether email is on the participant list. Matching is
// exact: emails are opaque strings and are never normalized or validated.
func (a *Activity) IsSignedUp(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SignUp appends email to the end of the participant list. Returns
// ErrAlreadySignedUp if the email is already present. MaxParticipants is
// advisory and not enforced.
func (a *Activity) SignUp(email string) error {
	if a.IsSignedUp(email) {
		return ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the participant list, preserving the order of
// the remaining participants. Returns ErrNotSignedUp if the email is absent.
func (a *Activity) Unregister(email string) error {
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return ErrNotSignedUp
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}

// Clone returns a deep copy of the activity.
func (a *Activity) Clone() *Activity {
	clone := *a
	clone.Participants = slices.Clone(a.Participants)
	return &clone
}
