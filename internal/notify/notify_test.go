package notify

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAlertRender(t *testing.T) {
	a := Alert{
		Area:     "F-North Ward / Sion / Matunga",
		Summary:  "Water cut in Sion tomorrow",
		Headline: "BMC announces supply disruption",
		Link:     "https://example.com/article",
	}

	got := a.Render()

	for _, want := range []string{
		"*Water Cut Alert*",
		"Area: F-North Ward / Sion / Matunga",
		"Note: Water cut in Sion tomorrow",
		"*BMC announces supply disruption*",
		"[Read Article](https://example.com/article)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered alert missing %q in:\n%s", want, got)
		}
	}
}

func TestDisabledNotifier(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	for _, tc := range []struct {
		name   string
		token  string
		chatID int64
	}{
		{"no token", "", 42},
		{"no chat", "123:abc", 0},
		{"nothing", "", 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n, err := NewTelegram(tc.token, tc.chatID, logger)
			if err != nil {
				t.Fatalf("NewTelegram: %v", err)
			}
			if n.Enabled() {
				t.Error("notifier should be disabled")
			}
			if err := n.Send("hello"); err != nil {
				t.Errorf("Send on disabled notifier should be a no-op, got %v", err)
			}
		})
	}
}

// sentMessage captures the form fields of one sendMessage call.
type sentMessage struct {
	ChatID    string
	Text      string
	ParseMode string
}

func TestSendRoundTrip(t *testing.T) {
	var sent sentMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"watercut","user_name":"watercutbot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			_ = r.ParseForm()
			sent.ChatID = r.FormValue("chat_id")
			sent.Text = r.FormValue("text")
			sent.ParseMode = r.FormValue("parse_mode")
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"x"}}`))
		default:
			_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
		}
	}))
	defer srv.Close()

	logger := log.New(io.Discard, "", 0)
	n, err := NewTelegramWithEndpoint("123:abc", srv.URL+"/bot%s/%s", 42, logger)
	if err != nil {
		t.Fatalf("NewTelegramWithEndpoint: %v", err)
	}
	if !n.Enabled() {
		t.Fatal("notifier should be enabled")
	}

	if err := n.Send("🚰 *Water Cut Alert*"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if sent.ChatID != "42" {
		t.Errorf("chat_id = %q, want 42", sent.ChatID)
	}
	if sent.Text != "🚰 *Water Cut Alert*" {
		t.Errorf("text = %q", sent.Text)
	}
	if sent.ParseMode != "Markdown" {
		t.Errorf("parse_mode = %q, want Markdown", sent.ParseMode)
	}
}

func TestSendFailureReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"watercut"}}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	logger := log.New(io.Discard, "", 0)
	n, err := NewTelegramWithEndpoint("123:abc", srv.URL+"/bot%s/%s", 42, logger)
	if err != nil {
		t.Fatalf("NewTelegramWithEndpoint: %v", err)
	}

	if err := n.Send("hello"); err == nil {
		t.Error("expected delivery error")
	}
}
