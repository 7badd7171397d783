package repository

import "github.com/mergington-high/activities-api/internal/domain"

// seedRoster builds a fresh copy of the school's initial activities. Every
// call allocates new slices so earlier mutations can never bleed into a
// reset.
func seedRoster() *domain.Roster {
	roster := domain.NewRoster()

	roster.Add("Chess Club", &domain.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	})

	roster.Add("Programming Class", &domain.Activity{
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	})

	roster.Add("Gym Class", &domain.Activity{
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	})

	return roster
}
