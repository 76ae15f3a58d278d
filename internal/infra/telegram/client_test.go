package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type botAPI struct {
	mu       sync.Mutex
	methods  []string
	payloads []map[string]any
	fail     bool
}

func (a *botAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	a.methods = append(a.methods, method)
	payload := map[string]any{}
	_ = json.NewDecoder(r.Body).Decode(&payload)
	a.payloads = append(a.payloads, payload)

	w.Header().Set("Content-Type", "application/json")
	switch {
	case method == "getMe":
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"homework","username":"homework_bot"}}`))
	case a.fail:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	default:
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1700000000,"chat":{"id":4242,"type":"private"},"text":"ok"}}`))
	}
}

func TestSendMessagePostsChatIDAndText(t *testing.T) {
	api := &botAPI{}
	srv := httptest.NewServer(api)
	defer srv.Close()

	adapter, err := NewTelebotAdapter("123:token", srv.URL, true)
	if err != nil {
		t.Fatalf("NewTelebotAdapter: %v", err)
	}
	if err := adapter.SendMessage(context.Background(), "4242", "hello"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	api.mu.Lock()
	defer api.mu.Unlock()
	if len(api.methods) != 1 || api.methods[0] != "sendMessage" {
		t.Fatalf("unexpected calls %v", api.methods)
	}
	if api.payloads[0]["chat_id"] != "4242" || api.payloads[0]["text"] != "hello" {
		t.Fatalf("unexpected payload %v", api.payloads[0])
	}
}

func TestSendMessageSurfacesAPIError(t *testing.T) {
	api := &botAPI{fail: true}
	srv := httptest.NewServer(api)
	defer srv.Close()

	adapter, err := NewTelebotAdapter("123:token", srv.URL, true)
	if err != nil {
		t.Fatalf("NewTelebotAdapter: %v", err)
	}
	err = adapter.SendMessage(context.Background(), "@missing", "hello")
	if err == nil || !strings.Contains(err.Error(), "chat not found") {
		t.Fatalf("expected chat not found error, got %v", err)
	}
}

func TestSendMessageCancelledContext(t *testing.T) {
	api := &botAPI{}
	srv := httptest.NewServer(api)
	defer srv.Close()

	adapter, err := NewTelebotAdapter("123:token", srv.URL, true)
	if err != nil {
		t.Fatalf("NewTelebotAdapter: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := adapter.SendMessage(ctx, "4242", "hello"); err == nil {
		t.Fatal("expected context error")
	}
	if len(api.methods) != 0 {
		t.Fatalf("expected no API calls, got %v", api.methods)
	}
}

func TestNewTelebotAdapterVerifiesToken(t *testing.T) {
	api := &botAPI{}
	srv := httptest.NewServer(api)
	defer srv.Close()

	if _, err := NewTelebotAdapter("123:token", srv.URL, false); err != nil {
		t.Fatalf("NewTelebotAdapter: %v", err)
	}
	if len(api.methods) != 1 || api.methods[0] != "getMe" {
		t.Fatalf("expected getMe call, got %v", api.methods)
	}
}
