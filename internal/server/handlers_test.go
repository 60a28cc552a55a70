package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parcelworks/labelextract/internal/common"
	"github.com/parcelworks/labelextract/internal/pipeline"
	"github.com/parcelworks/labelextract/internal/recipients"
	"github.com/parcelworks/labelextract/internal/resolve"
)

type fakeGenerator struct {
	response string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestHandler(gen *fakeGenerator) *Handler {
	names := resolve.NewNameResolver(recipients.New([]string{"Zoey Dong"}), resolve.DefaultNameThreshold)
	return New(pipeline.New(nil, gen, names), nil)
}

func TestHandleExtract(t *testing.T) {
	h := newTestHandler(&fakeGenerator{response: `{"recipient_name": "", "recipient_address": ""}`})

	body := `{"text": "2821 carradale dr, 95661-4047 roseville, ca, zoey dong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleExtract(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var got pipeline.Record
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.RecipientName != "Zoey Dong" {
		t.Errorf("recipient_name = %q, want %q", got.RecipientName, "Zoey Dong")
	}
	if !strings.Contains(got.RecipientAddress, "2821 Carradale Dr") {
		t.Errorf("recipient_address = %q, missing street", got.RecipientAddress)
	}
}

func TestHandleExtractRejectsBadRequests(t *testing.T) {
	h := newTestHandler(&fakeGenerator{response: "{}"})

	tests := []struct {
		name   string
		method string
		body   string
		want   int
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"invalid JSON", http.MethodPost, "not json", http.StatusBadRequest},
		{"missing text", http.MethodPost, `{"text": "  "}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/extract", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleExtract(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandleExtractBackendErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "backend unavailable",
			err:  common.NewAppError("LLM_UNAVAILABLE", "refused", common.ErrBackendUnavailable),
			want: http.StatusBadGateway,
		},
		{
			name: "backend timeout",
			err:  common.NewAppError("LLM_TIMEOUT", "deadline", common.ErrTimeout),
			want: http.StatusGatewayTimeout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeGenerator{err: tt.err})
			req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(`{"text": "scan"}`))
			rec := httptest.NewRecorder()
			h.HandleExtract(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
