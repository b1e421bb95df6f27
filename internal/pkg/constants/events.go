package constants

// NSQ topics for domain events
const (
	TopicUserRegistered      = "user.registered"
	TopicUserLoggedIn        = "user.logged_in"
	TopicAnnouncementCreated = "announcement.created"
	TopicLandReviewed        = "land.reviewed"
	TopicProductModerated    = "product.moderated"
)
