package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	slackSecret = "8f742231b10e8888abcd99yyyzzz85a5"
	slackTS     = "1531420618"
	slackBody   = "token=xyz&team_id=T1DC2JH3J&text=launch+promo"
	// HMAC-SHA256 of "v0:1531420618:token=xyz&team_id=T1DC2JH3J&text=launch+promo"
	// keyed with slackSecret.
	slackSig = "v0=f8059b0ca06f1c969664ce1c1d41040bd6ad4297174fe4e03258a6dba804f693"
)

func TestVerifySlackSignature_KnownVector(t *testing.T) {
	require.True(t, VerifySlackSignature(slackTS, slackBody, slackSig, slackSecret))
}

func TestVerifySlackSignature_MutatedBodyFails(t *testing.T) {
	require.False(t, VerifySlackSignature(slackTS, slackBody+"x", slackSig, slackSecret))
}

func TestVerifySlackSignature_MutatedSignatureFails(t *testing.T) {
	mutated := []byte(slackSig)
	mutated[len(mutated)-1] ^= 1
	require.False(t, VerifySlackSignature(slackTS, slackBody, string(mutated), slackSecret))
}

func TestVerifySlackSignature_WrongLengthFailsWithoutPanic(t *testing.T) {
	require.False(t, VerifySlackSignature(slackTS, slackBody, "v0=short", slackSecret))
	require.False(t, VerifySlackSignature(slackTS, slackBody, "", slackSecret))
}

func TestVerifySlackSignature_MissingSecretFails(t *testing.T) {
	require.False(t, VerifySlackSignature(slackTS, slackBody, slackSig, ""))
}

const (
	stripeSecret = "whsec_test"
	stripeBody   = `{"id":"evt_1","type":"customer.subscription.updated"}`
	// HMAC-SHA256 of "1692000000.<stripeBody>" keyed with stripeSecret.
	stripeHeader = "t=1692000000,v1=ee4fb98f3cda69d5fef8e6c2c35f7db3f687c4d3d507c14995679c1ee301070a"
)

func TestVerifyStripeSignature_KnownVector(t *testing.T) {
	require.True(t, VerifyStripeSignature(stripeHeader, stripeBody, stripeSecret))
}

func TestVerifyStripeSignature_MutatedBodyFails(t *testing.T) {
	require.False(t, VerifyStripeSignature(stripeHeader, stripeBody+" ", stripeSecret))
}

func TestVerifyStripeSignature_SecondCandidateMatches(t *testing.T) {
	header := "t=1692000000,v1=deadbeef,v1=ee4fb98f3cda69d5fef8e6c2c35f7db3f687c4d3d507c14995679c1ee301070a"
	require.True(t, VerifyStripeSignature(header, stripeBody, stripeSecret))
}

func TestVerifyStripeSignature_MalformedHeaderFails(t *testing.T) {
	require.False(t, VerifyStripeSignature("", stripeBody, stripeSecret))
	require.False(t, VerifyStripeSignature("v1=abc", stripeBody, stripeSecret))
	require.False(t, VerifyStripeSignature("t=1692000000", stripeBody, stripeSecret))
	require.False(t, VerifyStripeSignature("garbage", stripeBody, stripeSecret))
}
