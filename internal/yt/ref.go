package yt

// ChannelRef identifies a channel either by its canonical ID (UC...) or by a
// legacy username. When both are set the ID wins.
type ChannelRef struct {
	ID       string
	Username string
}

// ChannelID builds a ChannelRef for a canonical channel ID.
func ChannelID(id string) ChannelRef { return ChannelRef{ID: id} }

// Username builds a ChannelRef for a legacy YouTube username.
func Username(name string) ChannelRef { return ChannelRef{Username: name} }

func (r ChannelRef) validate() error {
	if r.ID == "" && r.Username == "" {
		return ErrNoChannelRef
	}
	return nil
}
