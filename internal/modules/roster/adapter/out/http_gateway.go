package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"turma/internal/modules/roster/domain"
	rosterout "turma/internal/modules/roster/port/out"
	apperrors "turma/internal/platform/errors"
)

// HTTPGateway maps the four CRUD operations onto the remote
// /participantes collection. No retries and no redirect handling beyond the
// http.Client defaults; the only explicit knob is the client timeout.
type HTTPGateway struct {
	baseURL string
	session rosterout.SessionSource
	http    *http.Client
}

func NewHTTPGateway(baseURL string, session rosterout.SessionSource, timeout time.Duration) rosterout.Gateway {
	return &HTTPGateway{
		baseURL: baseURL,
		session: session,
		http:    &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) List(ctx context.Context) ([]domain.Participant, error) {
	var out []domain.Participant
	if err := g.do(ctx, http.MethodGet, g.baseURL+"/participantes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) Create(ctx context.Context, payload domain.Payload) (domain.Participant, error) {
	var out domain.Participant
	if err := g.do(ctx, http.MethodPost, g.baseURL+"/participantes", payload, &out); err != nil {
		return domain.Participant{}, err
	}
	return out, nil
}

func (g *HTTPGateway) Update(ctx context.Context, id int64, payload domain.Payload) (domain.Participant, error) {
	var out domain.Participant
	url := g.baseURL + "/participantes/" + strconv.FormatInt(id, 10)
	if err := g.do(ctx, http.MethodPut, url, payload, &out); err != nil {
		return domain.Participant{}, err
	}
	return out, nil
}

func (g *HTTPGateway) Delete(ctx context.Context, id int64) error {
	url := g.baseURL + "/participantes/" + strconv.FormatInt(id, 10)
	return g.do(ctx, http.MethodDelete, url, nil, nil)
}

func (g *HTTPGateway) do(ctx context.Context, method, url string, body, out any) error {
	header, err := g.session.AuthHeader(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", header)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// responseError classifies a non-2xx response. A 400 whose body is a JSON
// object of field messages becomes a ValidationError; everything else keeps
// its status and raw body.
func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusBadRequest {
		var fields map[string]string
		if err := json.Unmarshal(raw, &fields); err == nil && len(fields) > 0 {
			return &apperrors.ValidationError{Fields: fields}
		}
	}
	return &apperrors.RequestError{Status: resp.StatusCode, Body: string(raw)}
}
