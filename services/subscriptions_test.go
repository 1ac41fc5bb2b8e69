package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"promokit/models"
)

type fakeSubscriptionStore struct {
	rows map[string]models.Subscription
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{rows: map[string]models.Subscription{}}
}

func (f *fakeSubscriptionStore) Upsert(change SubscriptionChange) error {
	f.rows[change.SubscriptionID] = models.Subscription{
		StripeCustomerID: change.CustomerID,
		StripeSubID:      change.SubscriptionID,
		Plan:             change.Plan,
		Status:           change.Status,
		CurrentPeriodEnd: change.CurrentPeriodEnd,
	}
	return nil
}

func (f *fakeSubscriptionStore) Cancel(subscriptionID string) error {
	row, ok := f.rows[subscriptionID]
	if !ok {
		return nil
	}
	row.Status = "canceled"
	f.rows[subscriptionID] = row
	return nil
}

func (f *fakeSubscriptionStore) PreviousStatus(subscriptionID string) (string, bool) {
	row, ok := f.rows[subscriptionID]
	return row.Status, ok
}

func TestApplySubscriptionEvent_DuplicateUpdatesAreIdempotent(t *testing.T) {
	store := newFakeSubscriptionStore()
	end := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	change := SubscriptionChange{
		CustomerID:       "cus_1",
		SubscriptionID:   "sub_1",
		Plan:             "pro",
		Status:           "active",
		CurrentPeriodEnd: &end,
	}

	_, err := ApplySubscriptionEvent(store, "customer.subscription.updated", change)
	require.NoError(t, err)
	_, err = ApplySubscriptionEvent(store, "customer.subscription.updated", change)
	require.NoError(t, err)

	require.Len(t, store.rows, 1)
	require.Equal(t, "active", store.rows["sub_1"].Status)
	require.Equal(t, "pro", store.rows["sub_1"].Plan)
}

func TestApplySubscriptionEvent_UpdateReflectsLatestState(t *testing.T) {
	store := newFakeSubscriptionStore()
	change := SubscriptionChange{CustomerID: "cus_1", SubscriptionID: "sub_1", Plan: "pro", Status: "active"}

	_, err := ApplySubscriptionEvent(store, "customer.subscription.created", change)
	require.NoError(t, err)

	change.Status = "past_due"
	prev, err := ApplySubscriptionEvent(store, "customer.subscription.updated", change)
	require.NoError(t, err)
	require.Equal(t, "active", prev)
	require.Equal(t, "past_due", store.rows["sub_1"].Status)
}

func TestApplySubscriptionEvent_DeletionForcesCanceled(t *testing.T) {
	store := newFakeSubscriptionStore()
	change := SubscriptionChange{CustomerID: "cus_1", SubscriptionID: "sub_1", Plan: "pro", Status: "active"}

	_, err := ApplySubscriptionEvent(store, "customer.subscription.created", change)
	require.NoError(t, err)

	_, err = ApplySubscriptionEvent(store, "customer.subscription.deleted", change)
	require.NoError(t, err)
	require.Equal(t, "canceled", store.rows["sub_1"].Status)
}

func TestApplySubscriptionEvent_UnknownTypeIsANoOp(t *testing.T) {
	store := newFakeSubscriptionStore()
	_, err := ApplySubscriptionEvent(store, "invoice.paid", SubscriptionChange{SubscriptionID: "sub_1"})
	require.NoError(t, err)
	require.Empty(t, store.rows)
}
