package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kevinemt0605/vitalmoto/config"
)

// BDVProvider talks to the Banco de Venezuela conciliation API. One request,
// no retries: a failed verification surfaces immediately and retrying is the
// caller's decision.
type BDVProvider struct {
	cfg    config.BDVConfig
	client *http.Client
}

func NewBDVProvider(cfg config.BDVConfig) *BDVProvider {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &BDVProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type bdvRequest struct {
	CedulaPagador   string `json:"cedulaPagador"`
	TelefonoPagador string `json:"telefonoPagador"`
	TelefonoDestino string `json:"telefonoDestino"`
	Referencia      string `json:"referencia"`
	FechaPago       string `json:"fechaPago"`
	Importe         string `json:"importe"`
	BancoOrigen     string `json:"bancoOrigen"`
	ReqCed          bool   `json:"reqCed"`
}

// Verify submits the claim to the conciliation endpoint and returns the
// structured reply. telefonoDestino is always the merchant's registered
// number and reqCed is always false, per the bank's affiliation contract.
func (p *BDVProvider) Verify(ctx context.Context, input *VerificationInput) (*GatewayResponse, error) {
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return nil, errors.New("bdv api key is not configured")
	}
	if strings.TrimSpace(p.cfg.MerchantPhone) == "" {
		return nil, errors.New("bdv merchant phone is not configured")
	}

	payload, err := json.Marshal(&bdvRequest{
		CedulaPagador:   input.PayerDocument,
		TelefonoPagador: input.PayerPhone,
		TelefonoDestino: p.cfg.MerchantPhone,
		Referencia:      input.Reference,
		FechaPago:       input.PaymentDate,
		Importe:         input.Amount,
		BancoOrigen:     input.OriginBank,
		ReqCed:          false,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.VerifyURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrGatewayUnreachable, resp.StatusCode, string(body))
	}

	var result GatewayResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrGatewayUnreachable, err)
	}

	return &result, nil
}
