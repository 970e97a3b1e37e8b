package models

const UserStateVersion = 1

// UserState is the persisted blob. Blobs written before the version field
// existed decode with Version == 0 and are treated as version 1.
type UserState struct {
	Version     int          `json:"version"`
	Favorites   []string     `json:"favorites"`
	PriceAlerts []PriceAlert `json:"priceAlerts"`
}

func NewUserState() *UserState {
	return &UserState{
		Version:     UserStateVersion,
		Favorites:   make([]string, 0),
		PriceAlerts: make([]PriceAlert, 0),
	}
}

// Clone returns a deep copy so a mutation can be staged before it is
// persisted.
func (s *UserState) Clone() *UserState {
	c := &UserState{
		Version:     s.Version,
		Favorites:   make([]string, len(s.Favorites)),
		PriceAlerts: make([]PriceAlert, len(s.PriceAlerts)),
	}
	copy(c.Favorites, s.Favorites)
	copy(c.PriceAlerts, s.PriceAlerts)
	return c
}
