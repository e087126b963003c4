package domain

import (
	"testing"
	"time"
)

const defaultTimeout = 30 * time.Minute

// TestNewChatSession tests session creation and initialization
func TestNewChatSession(t *testing.T) {
	session, err := NewChatSession("test_user_123", defaultTimeout)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if session.UserID != "test_user_123" {
		t.Errorf("expected UserID test_user_123, got %s", session.UserID)
	}

	if len(session.ID) != 36 {
		t.Errorf("expected a UUID session id, got %q", session.ID)
	}

	if len(session.History) != 0 {
		t.Errorf("expected empty history, got %d turns", len(session.History))
	}

	if session.StartTime.IsZero() {
		t.Error("expected StartTime to be set, got zero value")
	}

	if session.Context.LastSearchedProducts == nil || len(session.Context.LastSearchedProducts) != 0 {
		t.Errorf("expected empty last searched products, got %v", session.Context.LastSearchedProducts)
	}

	if session.Context.LoggedIn {
		t.Error("expected new session to not be logged in")
	}
}

// TestNewChatSessionDefaultsToGuest tests that an empty user reference becomes the guest sentinel
func TestNewChatSessionDefaultsToGuest(t *testing.T) {
	session, err := NewChatSession("", defaultTimeout)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if session.UserID != GuestUserID {
		t.Errorf("expected UserID %s, got %s", GuestUserID, session.UserID)
	}
}

// TestNewChatSessionUniqueIDs tests that two sessions never share an identifier
func TestNewChatSessionUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		session, err := NewChatSession(GuestUserID, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if seen[session.ID] {
			t.Fatalf("duplicate session id %s", session.ID)
		}
		seen[session.ID] = true
	}
}

// TestChatSessionIsExpired tests idle expiration
func TestChatSessionIsExpired(t *testing.T) {
	session, _ := NewChatSession(GuestUserID, defaultTimeout)

	if session.IsExpired() {
		t.Error("expected new session to not be expired")
	}

	session.Touch(time.Now().Add(-31 * time.Minute))
	if !session.IsExpired() {
		t.Error("expected session idle for 31 minutes to be expired")
	}

	session.Touch(time.Now().Add(-29 * time.Minute))
	if session.IsExpired() {
		t.Error("expected session idle for 29 minutes to not be expired")
	}
}

// TestChatSessionWithoutTimeoutNeverExpires tests that a zero timeout disables expiry
func TestChatSessionWithoutTimeoutNeverExpires(t *testing.T) {
	session, _ := NewChatSession(GuestUserID, 0)
	session.Touch(time.Now().Add(-365 * 24 * time.Hour))

	if session.IsExpired() {
		t.Error("expected session without timeout to never expire")
	}
}

// TestChatSessionAddMessage tests that turns keep insertion order
func TestChatSessionAddMessage(t *testing.T) {
	session, _ := NewChatSession(GuestUserID, defaultTimeout)

	session.AddMessage(SenderUser, "hello")
	session.AddMessage(SenderChatbot, "Hello! I'm your shopping assistant.")

	history := session.GetHistory()
	if len(history) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(history))
	}

	if history[0].Sender != SenderUser || history[0].Message != "hello" {
		t.Errorf("expected first turn to be user 'hello', got %v", history[0])
	}

	if history[1].Sender != SenderChatbot {
		t.Errorf("expected second turn from chatbot, got %s", history[1].Sender)
	}

	if history[1].Timestamp.Before(history[0].Timestamp) {
		t.Error("expected timestamps to be non-decreasing")
	}
}

// TestChatSessionGetHistoryReturnsCopy tests that callers cannot mutate the history
func TestChatSessionGetHistoryReturnsCopy(t *testing.T) {
	session, _ := NewChatSession(GuestUserID, defaultTimeout)
	session.AddMessage(SenderUser, "original")

	history := session.GetHistory()
	history[0].Message = "changed"

	if session.History[0].Message != "original" {
		t.Errorf("expected history to be unchanged, got %s", session.History[0].Message)
	}
}

// TestChatSessionReset tests that reset keeps identity and leaves only the notice
func TestChatSessionReset(t *testing.T) {
	session, _ := NewChatSession("test_user_123", defaultTimeout)
	id := session.ID
	start := session.StartTime

	productID := "p-1"
	username := "testuser"
	session.AddMessage(SenderUser, "show me laptops")
	session.Context.LastSearchedProducts = []Product{{ID: productID, Name: "Laptop Pro"}}
	session.Context.LastViewedProductID = &productID
	session.Context.LoggedIn = true
	session.Context.Username = &username

	session.Reset()

	if session.ID != id {
		t.Errorf("expected ID %s to be kept, got %s", id, session.ID)
	}
	if session.UserID != "test_user_123" {
		t.Errorf("expected UserID to be kept, got %s", session.UserID)
	}
	if !session.StartTime.Equal(start) {
		t.Error("expected StartTime to be unchanged")
	}

	if len(session.History) != 1 {
		t.Fatalf("expected exactly one turn after reset, got %d", len(session.History))
	}
	if session.History[0].Sender != SenderChatbot || session.History[0].Message != ResetNotice {
		t.Errorf("expected reset notice from chatbot, got %v", session.History[0])
	}

	if len(session.Context.LastSearchedProducts) != 0 {
		t.Error("expected last searched products to be cleared")
	}
	if session.Context.LastViewedProductID != nil {
		t.Error("expected last viewed product to be cleared")
	}
	if session.Context.LoggedIn || session.Context.Username != nil {
		t.Error("expected login state to be cleared")
	}
}

// TestChatSessionSnapshotIsDetached tests that a snapshot does not alias session state
func TestChatSessionSnapshotIsDetached(t *testing.T) {
	session, _ := NewChatSession(GuestUserID, defaultTimeout)
	session.AddMessage(SenderUser, "hi")
	session.Context.LastSearchedProducts = []Product{{ID: "p-1"}}

	snapshot := session.Snapshot()
	session.AddMessage(SenderChatbot, "Hello!")
	session.Context.LastSearchedProducts[0].ID = "p-2"

	if len(snapshot.ChatHistory) != 1 {
		t.Errorf("expected snapshot history of 1 turn, got %d", len(snapshot.ChatHistory))
	}
	if snapshot.Context.LastSearchedProducts[0].ID != "p-1" {
		t.Errorf("expected snapshot product p-1, got %s", snapshot.Context.LastSearchedProducts[0].ID)
	}
	if snapshot.SessionID != session.ID {
		t.Errorf("expected snapshot id %s, got %s", session.ID, snapshot.SessionID)
	}
}

// TestIntentString tests the wire labels of intents
func TestIntentString(t *testing.T) {
	cases := map[Intent]string{
		IntentGoodbye:           "goodbye",
		IntentResetConversation: "reset_conversation",
		IntentAddToCart:         "add_to_cart",
		IntentSearchProduct:     "search_product",
		Intent(99):              "unknown",
	}
	for intent, want := range cases {
		if got := intent.String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}
