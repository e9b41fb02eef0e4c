package telegram

// accessList is the bot's user allow-list. An empty list allows everyone.
type accessList struct {
	allowed map[int64]bool
}

func newAccessList(allowedUserIDs []int64) *accessList {
	allowed := make(map[int64]bool, len(allowedUserIDs))
	for _, id := range allowedUserIDs {
		allowed[id] = true
	}
	return &accessList{allowed: allowed}
}

// isAllowed checks if a user is authorized to use the bot.
func (a *accessList) isAllowed(userID int64) bool {
	if len(a.allowed) == 0 {
		return true
	}
	return a.allowed[userID]
}
