package room

import "bridgeserver/internal/wire"

// appendLog records notifications in the replay log handed to sockets that
// join mid-game. Caller must hold r.mu.
func (r *Room) appendLog(ns ...wire.Notification) {
	r.log = append(r.log, ns...)
}

// resetLog replaces the replay log outright — used when a new deal starts,
// per the trim policy: only the latest GameStarted/Ask* notifications are
// worth replaying, not the whole finished deal's history. Caller must hold
// r.mu.
func (r *Room) resetLog(ns ...wire.Notification) {
	r.log = append([]wire.Notification{}, ns...)
}

// ReplayLog returns a copy of the notifications a newly joined socket
// should be sent to catch up to the room's current state.
func (r *Room) ReplayLog() []wire.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]wire.Notification, len(r.log))
	copy(out, r.log)
	return out
}
