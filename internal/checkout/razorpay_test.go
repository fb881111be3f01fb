package checkout

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestVerifySignature(t *testing.T) {
	client := NewRazorpayClient("rzp_test_key", "secret123")

	orderID := "order_abc"
	paymentID := "pay_xyz"

	mac := hmac.New(sha256.New, []byte("secret123"))
	mac.Write([]byte(orderID + "|" + paymentID))
	valid := hex.EncodeToString(mac.Sum(nil))

	if !client.VerifySignature(orderID, paymentID, valid) {
		t.Fatal("valid signature rejected")
	}
	if client.VerifySignature(orderID, paymentID, "deadbeef") {
		t.Fatal("forged signature accepted")
	}
	if client.VerifySignature("", paymentID, valid) {
		t.Fatal("empty order id accepted")
	}
	if client.VerifySignature(orderID, "pay_other", valid) {
		t.Fatal("signature accepted for the wrong payment")
	}
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_live1",
			"amount":   req.Amount,
			"currency": req.Currency,
			"status":   "created",
		})
	}))
	defer srv.Close()

	client := &RazorpayClient{
		keyID:     "key",
		keySecret: "secret",
		baseURL:   srv.URL,
		http:      &http.Client{Timeout: 5 * time.Second},
	}

	order, err := client.CreateOrder(context.Background(), 5500, "rcpt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.ID != "order_live1" || order.Amount != 5500 || order.Currency != "INR" {
		t.Errorf("order = %+v", order)
	}
}

func TestCreateOrderRejectsBadInput(t *testing.T) {
	client := NewRazorpayClient("key", "secret")

	if _, err := client.CreateOrder(context.Background(), 0, "rcpt"); err == nil {
		t.Fatal("zero amount must be rejected before any network call")
	}

	empty := NewRazorpayClient("", "")
	if _, err := empty.CreateOrder(context.Background(), 100, "rcpt"); err == nil {
		t.Fatal("missing credentials must be rejected")
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"amount too small"}}`))
	}))
	defer srv.Close()

	client := &RazorpayClient{
		keyID:     "key",
		keySecret: "secret",
		baseURL:   srv.URL,
		http:      &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := client.CreateOrder(context.Background(), 100, "rcpt"); err == nil {
		t.Fatal("expected error on gateway rejection")
	}
}
