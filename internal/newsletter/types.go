package newsletter

import "time"

// Subscription is one newsletter signup from the landing page footer.
type Subscription struct {
	ID           string
	Email        string
	SubscribedAt time.Time
}

type ListSubscriptionsInput struct {
	Page  int
	Limit int
}

type ListSubscriptionsOutput struct {
	Subscriptions []Subscription
	Total         int
	Page          int
	Limit         int
}
