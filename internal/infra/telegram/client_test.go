package telegram

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/telebot.v3"
)

type fakeSender struct {
	to   telebot.Recipient
	what interface{}
	err  error
}

func (f *fakeSender) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	f.to = to
	f.what = what
	if f.err != nil {
		return nil, f.err
	}
	return &telebot.Message{}, nil
}

func TestParseRecipient(t *testing.T) {
	tests := []struct {
		chatID  string
		want    string
		numeric bool
	}{
		{"123456", "123456", true},
		{"-100200300", "-100200300", true},
		{"@homework_channel", "@homework_channel", false},
	}

	for _, tt := range tests {
		t.Run(tt.chatID, func(t *testing.T) {
			r := ParseRecipient(tt.chatID)
			if r.Recipient() != tt.want {
				t.Errorf("Recipient() = %q, want %q", r.Recipient(), tt.want)
			}
			if _, ok := r.(telebot.ChatID); ok != tt.numeric {
				t.Errorf("ChatID type = %v, want %v", ok, tt.numeric)
			}
		})
	}
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	sender := &fakeSender{}
	adapter := NewTelebotAdapter(sender, "42")

	if err := adapter.SendMessage("hello"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if sender.to.Recipient() != "42" {
		t.Errorf("sent to %q, want 42", sender.to.Recipient())
	}
	if sender.what != "hello" {
		t.Errorf("sent %v, want hello", sender.what)
	}
}

func TestTelebotAdapter_SendMessageError(t *testing.T) {
	cause := errors.New("chat not found")
	adapter := NewTelebotAdapter(&fakeSender{err: cause}, "42")

	err := adapter.SendMessage("hello")
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want wrapped %v", err, cause)
	}
}

func TestNewBot_UnreachableAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	apiURL := server.URL
	server.Close() // connection refused from now on

	if _, err := NewBot("1:x", apiURL, testLogger()); err != nil {
		t.Fatalf("NewBot() error = %v, want nil with Telegram unreachable", err)
	}
}

func TestNewBot_NoStartupCall(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	if _, err := NewBot("1:x", server.URL, testLogger()); err != nil {
		t.Fatalf("NewBot() error = %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("requests at startup = %v, want none", paths)
	}
}

func TestNewBot_SendsThroughAdapter(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
	}))
	defer server.Close()

	bot, err := NewBot("1:x", server.URL, testLogger())
	if err != nil {
		t.Fatalf("NewBot() error = %v", err)
	}

	if err := NewTelebotAdapter(bot, "42").SendMessage("hello"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if len(paths) != 1 || paths[0] != "/bot1:x/sendMessage" {
		t.Errorf("requests = %v, want [/bot1:x/sendMessage]", paths)
	}
}

func testLogger() *logrus.Entry {
	log, _ := test.NewNullLogger()
	return log.WithField("component", "telegram")
}
