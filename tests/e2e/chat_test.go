package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pairchat/pairchat/pkg/client"
)

func openChat(t *testing.T, env *TestEnv) *client.ChatSession {
	t.Helper()
	c := client.New("", client.WithServer(env.ServerURL))
	session, err := c.Chat(context.Background())
	if err != nil {
		t.Fatalf("failed to open chat session: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

// awaitEvent waits for the next frame of the given type, skipping frames of
// other types (presence updates interleave with everything).
func awaitEvent(t *testing.T, s *client.ChatSession, eventType string) *client.ChatEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-s.Events():
			if !ok {
				t.Fatalf("session closed while waiting for %q", eventType)
			}
			if event.Type == eventType {
				return event
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %q", eventType)
		}
	}
}

func TestChatPairing(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Cleanup(t)

	s1 := openChat(t, env)
	s2 := openChat(t, env)

	t.Run("connect broadcasts online count", func(t *testing.T) {
		event := awaitEvent(t, s1, "online_count")
		if event.Count < 1 {
			t.Errorf("count = %d, want >= 1", event.Count)
		}
	})

	t.Run("first joiner waits", func(t *testing.T) {
		if err := s1.Join(nil); err != nil {
			t.Fatalf("join: %v", err)
		}
		awaitEvent(t, s1, "waiting")
	})

	var m1, m2 *client.ChatEvent

	t.Run("second joiner completes the match", func(t *testing.T) {
		if err := s2.Join(nil); err != nil {
			t.Fatalf("join: %v", err)
		}
		m1 = awaitEvent(t, s1, "matched")
		m2 = awaitEvent(t, s2, "matched")

		if m1.Initiator == m2.Initiator {
			t.Errorf("exactly one side must initiate, got %v and %v", m1.Initiator, m2.Initiator)
		}
		if !m2.Initiator {
			t.Error("the joiner completing the match should initiate")
		}
	})

	t.Run("signal payload relays verbatim", func(t *testing.T) {
		payload := json.RawMessage(`{"sdp":"v=0 fake offer","type":"offer"}`)
		if err := s2.SendSignal(payload); err != nil {
			t.Fatalf("send signal: %v", err)
		}
		event := awaitEvent(t, s1, "signal")
		if string(event.Data) != string(payload) {
			t.Errorf("signal data = %s, want %s", event.Data, payload)
		}
	})

	t.Run("messages relay to the partner", func(t *testing.T) {
		if err := s1.SendMessage("hello there"); err != nil {
			t.Fatalf("send message: %v", err)
		}
		event := awaitEvent(t, s2, "message")
		if event.Content != "hello there" {
			t.Errorf("content = %q, want %q", event.Content, "hello there")
		}
	})

	t.Run("typing indicator relays", func(t *testing.T) {
		if err := s1.SendTyping(true); err != nil {
			t.Fatalf("send typing: %v", err)
		}
		event := awaitEvent(t, s2, "typing")
		if !event.IsTyping {
			t.Error("expected isTyping true")
		}
	})

	t.Run("next notifies the abandoned partner", func(t *testing.T) {
		if err := s1.Next(nil); err != nil {
			t.Fatalf("next: %v", err)
		}
		awaitEvent(t, s2, "partner_disconnected")
		awaitEvent(t, s1, "waiting")
	})

	t.Run("rejoin matches again", func(t *testing.T) {
		if err := s2.Join(nil); err != nil {
			t.Fatalf("join: %v", err)
		}
		awaitEvent(t, s1, "matched")
		awaitEvent(t, s2, "matched")
	})

	t.Run("leave notifies the partner without requeueing", func(t *testing.T) {
		if err := s1.Leave(); err != nil {
			t.Fatalf("leave: %v", err)
		}
		awaitEvent(t, s2, "partner_disconnected")
	})

	t.Run("disconnect notifies a paired partner", func(t *testing.T) {
		if err := s1.Join(nil); err != nil {
			t.Fatalf("join: %v", err)
		}
		if err := s2.Join(nil); err != nil {
			t.Fatalf("join: %v", err)
		}
		awaitEvent(t, s1, "matched")
		awaitEvent(t, s2, "matched")

		s1.Close()
		awaitEvent(t, s2, "partner_disconnected")
		awaitEvent(t, s2, "online_count")
	})
}

func TestChatInterestMatching(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Cleanup(t)

	s1 := openChat(t, env)
	s2 := openChat(t, env)

	if err := s1.Join([]string{"music", "games"}); err != nil {
		t.Fatalf("join: %v", err)
	}
	awaitEvent(t, s1, "waiting")

	if err := s2.Join([]string{"games", "cooking"}); err != nil {
		t.Fatalf("join: %v", err)
	}

	m1 := awaitEvent(t, s1, "matched")
	m2 := awaitEvent(t, s2, "matched")

	for _, m := range []*client.ChatEvent{m1, m2} {
		if len(m.Interests) != 1 || m.Interests[0] != "games" {
			t.Errorf("shared interests = %v, want [games]", m.Interests)
		}
	}
}

func TestChatBlacklistMasking(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Cleanup(t)

	admin := client.New(TestAdminPassword, client.WithServer(env.ServerURL))
	if err := admin.SetBlacklist([]string{"bad"}); err != nil {
		t.Fatalf("set blacklist: %v", err)
	}

	// Let the relay-side blacklist cache expire and pick up the new words.
	time.Sleep(10 * testBlacklistTTL)

	s1 := openChat(t, env)
	s2 := openChat(t, env)

	if err := s1.Join(nil); err != nil {
		t.Fatalf("join: %v", err)
	}
	awaitEvent(t, s1, "waiting")
	if err := s2.Join(nil); err != nil {
		t.Fatalf("join: %v", err)
	}
	awaitEvent(t, s1, "matched")
	awaitEvent(t, s2, "matched")

	if err := s1.SendMessage("this is BAD and badly"); err != nil {
		t.Fatalf("send message: %v", err)
	}
	event := awaitEvent(t, s2, "message")
	if event.Content != "this is *** and ***ly" {
		t.Errorf("content = %q, want %q", event.Content, "this is *** and ***ly")
	}
}
