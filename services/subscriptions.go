package services

import (
	"database/sql"
	"time"

	"promokit/db"
)

// SubscriptionChange is the normalized content of a billing webhook event.
type SubscriptionChange struct {
	CustomerID       string
	SubscriptionID   string
	Plan             string
	Status           string
	CurrentPeriodEnd *time.Time
}

// SubscriptionStore persists billing-processor subscription state.
// Upsert is keyed by the processor's subscription id so duplicate webhook
// deliveries collapse into one row.
type SubscriptionStore interface {
	Upsert(change SubscriptionChange) error
	Cancel(subscriptionID string) error
	PreviousStatus(subscriptionID string) (string, bool)
}

// PostgresSubscriptionStore is the production store over the subscriptions
// table.
type PostgresSubscriptionStore struct{}

func (PostgresSubscriptionStore) Upsert(change SubscriptionChange) error {
	// The user link is resolved from the customer id when the account is
	// known; anonymous checkouts still get a subscription row.
	var userID sql.NullString
	_ = db.GetDB().QueryRow(
		"SELECT id FROM users WHERE stripe_customer_id = $1", change.CustomerID,
	).Scan(&userID)

	_, err := db.GetDB().Exec(`
		INSERT INTO subscriptions (user_id, stripe_customer_id, stripe_sub_id, plan, status, current_period_end, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (stripe_sub_id) DO UPDATE SET
			plan = EXCLUDED.plan,
			status = EXCLUDED.status,
			current_period_end = EXCLUDED.current_period_end,
			updated_at = NOW()
	`, userID, change.CustomerID, change.SubscriptionID, change.Plan, change.Status, change.CurrentPeriodEnd)
	if err != nil {
		return err
	}

	if userID.Valid {
		_, err = db.GetDB().Exec(
			"UPDATE users SET subscription_tier = $1, subscription_status = $2 WHERE id = $3",
			change.Plan, change.Status, userID.String,
		)
	}
	return err
}

func (PostgresSubscriptionStore) Cancel(subscriptionID string) error {
	_, err := db.GetDB().Exec(
		"UPDATE subscriptions SET status = 'canceled', updated_at = NOW() WHERE stripe_sub_id = $1",
		subscriptionID,
	)
	return err
}

func (PostgresSubscriptionStore) PreviousStatus(subscriptionID string) (string, bool) {
	var status string
	err := db.GetDB().QueryRow(
		"SELECT status FROM subscriptions WHERE stripe_sub_id = $1", subscriptionID,
	).Scan(&status)
	if err != nil {
		return "", false
	}
	return status, true
}

// ApplySubscriptionEvent routes one webhook event into the store. Create and
// update events upsert; deletion forces status canceled. Unknown event types
// are the caller's problem to ignore. Returns the status the subscription had
// before the event, for transition notifications.
func ApplySubscriptionEvent(store SubscriptionStore, eventType string, change SubscriptionChange) (prevStatus string, err error) {
	prevStatus, _ = store.PreviousStatus(change.SubscriptionID)
	switch eventType {
	case "customer.subscription.created", "customer.subscription.updated":
		err = store.Upsert(change)
	case "customer.subscription.deleted":
		err = store.Cancel(change.SubscriptionID)
	}
	return prevStatus, err
}
