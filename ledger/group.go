package ledger

import "github.com/Thomblin/duty-roster/types"

// GroupState is the state shared by all members of one group.
type GroupState struct {
	lastService types.Date
	served      bool
}

// NewGroupState returns a group that has never served.
func NewGroupState() *GroupState {
	return &GroupState{}
}

// LastService returns the date most recently registered by any member.
//
// The date is the last one written, not the latest one: registering an older
// date after a newer one moves it backwards.
func (g *GroupState) LastService() (types.Date, bool) {
	return g.lastService, g.served
}

func (g *GroupState) record(date types.Date) {
	g.lastService = date
	g.served = true
}
