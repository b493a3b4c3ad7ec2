package domain

// CanModifyEvent reports whether the user may mutate the event: only the host.
// Reads are open to anyone and never consult this predicate.
func CanModifyEvent(userID string, event *Event) bool {
	return event != nil && userID != "" && event.HostedBy == userID
}

// CanModifySession reports whether the user may mutate the session: only the
// proposer.
func CanModifySession(userID string, session *Session) bool {
	return session != nil && userID != "" && session.ProposedBy == userID
}
