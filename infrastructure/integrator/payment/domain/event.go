package paymentdomain

const (
	EventCheckoutSessionCompleted    = "checkout.session.completed"
	EventCustomerSubscriptionDeleted = "customer.subscription.deleted"
)

// CheckoutSessionObject contém apenas os campos lidos de checkout.session.completed
type CheckoutSessionObject struct {
	ID           string            `json:"id"`
	Customer     string            `json:"customer"`
	Subscription string            `json:"subscription"`
	Metadata     map[string]string `json:"metadata"`
}

// SubscriptionObject contém apenas os campos lidos de customer.subscription.deleted
type SubscriptionObject struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
}
