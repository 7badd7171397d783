package domain

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Roster is the full collection of activities, keyed by activity name. It
// remembers insertion order so listings and JSON output stay stable for the
// life of the process.
type Roster struct {
	order      []string
	activities map[string]*Activity
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{activities: make(map[string]*Activity)}
}

// Add stores activity under name. Re-adding an existing name replaces the
// record but keeps its original position.
func (r *Roster) Add(name string, activity *Activity) {
	if _, exists := r.activities[name]; !exists {
		r.order = append(r.order, name)
	}
	r.activities[name] = activity
}

// Get returns the activity stored under name. Lookup is case-sensitive and
// whitespace-sensitive.
func (r *Roster) Get(name string) (*Activity, bool) {
	activity, ok := r.activities[name]
	return activity, ok
}

// Names returns the activity names in insertion order.
func (r *Roster) Names() []string {
	return slices.Clone(r.order)
}

// Len returns the number of activities on the roster.
func (r *Roster) Len() int {
	return len(r.activities)
}

// Clone returns a deep copy of the roster.
func (r *Roster) Clone() *Roster {
	clone := NewRoster()
	for _, name := range r.order {
		clone.Add(name, r.activities[name].Clone())
	}
	return clone
}

// MarshalJSON implements json.Marshaler. Keys are written in insertion order;
// marshaling the underlying map directly would sort them.
func (r *Roster) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(r.activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
