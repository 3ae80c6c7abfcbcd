package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResendClientSend(t *testing.T) {
	var got resendSendRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewResendClient("re_test_key", "Hartmann Barbearia <contato@hartmann.dev>")
	c.endpoint = srv.URL

	err := c.SendAppointmentConfirmation(context.Background(), ConfirmationData{
		ClientName:  "João",
		ClientEmail: "joao@example.com",
		BarberName:  "Lucas",
		ServiceName: "Corte Masculino",
		Date:        "07/01/2030",
		Time:        "10:00",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if auth != "Bearer re_test_key" {
		t.Fatalf("authorization header = %q", auth)
	}
	if got.From != "Hartmann Barbearia <contato@hartmann.dev>" {
		t.Fatalf("from = %q", got.From)
	}
	if len(got.To) != 1 || got.To[0] != "joao@example.com" {
		t.Fatalf("to = %v", got.To)
	}
	if got.Subject != "✂️ Agendamento Confirmado!" {
		t.Fatalf("subject = %q", got.Subject)
	}
	if !strings.Contains(got.HTML, "Olá, João!") {
		t.Fatalf("html body missing greeting")
	}
}

func TestResendClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid to"}`))
	}))
	defer srv.Close()

	c := NewResendClient("re_test_key", "")
	c.endpoint = srv.URL

	err := c.SendAppointmentConfirmation(context.Background(), ConfirmationData{
		ClientEmail: "joao@example.com",
	})
	if err == nil {
		t.Fatalf("expected error on 422")
	}
	if !strings.Contains(err.Error(), "status=422") {
		t.Fatalf("error should carry status: %v", err)
	}
}

func TestResendClientMissingRecipient(t *testing.T) {
	c := NewResendClient("re_test_key", "")

	err := c.SendAppointmentConfirmation(context.Background(), ConfirmationData{})
	if err == nil {
		t.Fatalf("expected error without recipient")
	}
}

func TestNewResendClientWithoutKey(t *testing.T) {
	if c := NewResendClient("", "x"); c != nil {
		t.Fatalf("empty key should return nil client")
	}
}
