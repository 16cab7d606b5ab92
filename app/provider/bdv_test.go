package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kevinemt0605/vitalmoto/config"
)

func testInput() *VerificationInput {
	return &VerificationInput{
		PayerDocument: "V27037606",
		PayerPhone:    "04140000000",
		Reference:     "12345678",
		PaymentDate:   "12/02/2023",
		Amount:        "120.00",
		OriginBank:    "0102",
	}
}

func newTestProvider(url string) *BDVProvider {
	return NewBDVProvider(config.BDVConfig{
		VerifyURL:     url,
		APIKey:        "test-key",
		MerchantPhone: "04127141363",
		HTTPTimeout:   time.Second,
	})
}

func TestVerifySendsBankSchema(t *testing.T) {
	var got bdvRequest
	var apiKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("X-API-Key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(&GatewayResponse{Code: 1000, Message: "ok"})
	}))
	defer server.Close()

	resp, err := newTestProvider(server.URL).Verify(context.Background(), testInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Code != 1000 {
		t.Errorf("unexpected code %d", resp.Code)
	}
	if apiKey != "test-key" {
		t.Errorf("unexpected api key header %q", apiKey)
	}
	if got.TelefonoDestino != "04127141363" {
		t.Errorf("telefonoDestino must be the configured merchant phone, got %q", got.TelefonoDestino)
	}
	if got.ReqCed {
		t.Error("reqCed must always be false")
	}
	if got.Referencia != "12345678" || got.Importe != "120.00" || got.BancoOrigen != "0102" {
		t.Errorf("claim fields not forwarded verbatim: %+v", got)
	}
}

func TestVerifyNon2xxIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).Verify(context.Background(), testInput())
	if !errors.Is(err, ErrGatewayUnreachable) {
		t.Fatalf("expected ErrGatewayUnreachable, got %v", err)
	}
}

func TestVerifyNetworkErrorIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newTestProvider(server.URL).Verify(context.Background(), testInput())
	if !errors.Is(err, ErrGatewayUnreachable) {
		t.Fatalf("expected ErrGatewayUnreachable, got %v", err)
	}
}

func TestVerifyRequiresConfiguration(t *testing.T) {
	p := NewBDVProvider(config.BDVConfig{VerifyURL: "https://example.invalid"})
	if _, err := p.Verify(context.Background(), testInput()); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		resp *GatewayResponse
		want Outcome
	}{
		{"matched", &GatewayResponse{Code: 1000, Message: "ok"}, OutcomeAccepted},
		{"already settled", &GatewayResponse{Code: 1010, Message: "Pago ya CONCILIADO previamente"}, OutcomeAcceptedPrior},
		{"already settled code without message", &GatewayResponse{Code: 1010, Message: "rechazado"}, OutcomeDeclined},
		{"declined", &GatewayResponse{Code: 9999, Message: "el monto no coincide"}, OutcomeDeclined},
		{"nil", nil, OutcomeDeclined},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.resp); got != tc.want {
				t.Errorf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}
