package telegram

import "sync"

// sessionManager tracks access control and each chat's selected genre.
type sessionManager struct {
	mu      sync.Mutex
	genres  map[int64]string
	allowed map[int64]bool // nil or empty = allow all
}

// newSessionManager creates a session manager.
// If allowedChatIDs is empty, all chats are allowed.
func newSessionManager(allowedChatIDs []int64) *sessionManager {
	allowed := make(map[int64]bool, len(allowedChatIDs))
	for _, id := range allowedChatIDs {
		allowed[id] = true
	}
	return &sessionManager{
		genres:  make(map[int64]string),
		allowed: allowed,
	}
}

// isAllowed checks if a chat is authorized to use the bot.
func (sm *sessionManager) isAllowed(chatID int64) bool {
	if len(sm.allowed) == 0 {
		return true
	}
	return sm.allowed[chatID]
}

// selectGenre remembers the chat's genre so /top without an argument
// reuses it.
func (sm *sessionManager) selectGenre(chatID int64, genre string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.genres[chatID] = genre
}

// selectedGenre returns the chat's remembered genre, if any.
func (sm *sessionManager) selectedGenre(chatID int64) string {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.genres[chatID]
}
