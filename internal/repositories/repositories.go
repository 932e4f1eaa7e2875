package repositories

// Repositories bundles one implementation of every repository so the router
// can be wired against either the persistent stores or the in-memory store.
type Repositories struct {
	Users         UserRepository
	Posts         PostRepository
	Claims        ClaimRepository
	ChatMessages  ChatMessageRepository
	Meetings      MeetingRepository
	Notifications NotificationRepository
}
