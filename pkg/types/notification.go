package types

type NotificationCategory string

const (
	NotificationCategoryOrder     NotificationCategory = "order"
	NotificationCategoryPayment   NotificationCategory = "payment"
	NotificationCategoryAccount   NotificationCategory = "account"
	NotificationCategorySecurity  NotificationCategory = "security"
	NotificationCategoryPromotion NotificationCategory = "promotion"
	NotificationCategorySystem    NotificationCategory = "system"
	NotificationCategoryRestock   NotificationCategory = "restock"
)

type NotificationChannel string

const (
	NotificationChannelEmail    NotificationChannel = "email"
	NotificationChannelPush     NotificationChannel = "push"
	NotificationChannelInternal NotificationChannel = "internal"
)

// EmailStatus describes how the email leg of a notification is to be handled.
type EmailStatus string

const (
	EmailStatusImmediate EmailStatus = "immediate"
	EmailStatusScheduled EmailStatus = "scheduled"
	EmailStatusDraft     EmailStatus = "draft"
)
