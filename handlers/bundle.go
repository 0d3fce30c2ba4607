package handlers

import (
	userRepo "amonarq/database/repository/user"
)

// HandlerBundle aggregates every handler the router needs, plus the user
// repository the auth middleware re-checks roles against.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth       *AuthHandler
	Users      *UserHandler
	Invitation *InvitationHandler
	Content    *ContentHandler
	Inbox      *InboxHandler
	Settings   *SettingsHandler
	Upload     *UploadHandler
	Dashboard  *DashboardHandler
	Email      *EmailHandler
}
