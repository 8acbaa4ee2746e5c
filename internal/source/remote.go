// Package source provides the response sources the chat panel talks to.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/psychmaster/psychmaster/internal/model/chat"
	"github.com/psychmaster/psychmaster/internal/panel"
	"github.com/psychmaster/psychmaster/pkg/utils"
)

const maxErrorBody = 4 << 10

var errMissingSessionID = errors.New("response carried no session_id")

// NetworkError is returned for transport failures and non-2xx answers.
// Status is zero when no response was received.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Remote calls the psychMASTER chat API.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote targets baseURL, the server root without the /api prefix. A nil
// client uses http.DefaultClient.
func NewRemote(baseURL string, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		client:  client,
	}
}

// CreateSession asks the backend for a new session id.
func (r *Remote) CreateSession(ctx context.Context) (string, error) {
	var resp chat.CreateSessionResponse
	if err := r.do(ctx, "create session", http.MethodPost, "/chat/session", chat.CreateSessionRequest{Action: chat.ActionCreate}, &resp); err != nil {
		return "", err
	}
	if resp.SessionID == "" {
		return "", &NetworkError{Op: "create session", Err: errMissingSessionID}
	}
	return resp.SessionID, nil
}

// SendMessage posts one user message and returns the backend reply.
func (r *Remote) SendMessage(ctx context.Context, text, sessionID string) (panel.Reply, error) {
	var resp chat.SendResponse
	if err := r.do(ctx, "send message", http.MethodPost, "/chat", chat.SendRequest{Message: text, SessionID: sessionID}, &resp); err != nil {
		return panel.Reply{}, err
	}
	return panel.Reply{
		Text:      resp.Response,
		IsCrisis:  resp.IsCrisis,
		SessionID: resp.SessionID,
	}, nil
}

// EndSession closes the session and returns its assessment.
func (r *Remote) EndSession(ctx context.Context, sessionID string) (chat.EndSessionResponse, error) {
	var resp chat.EndSessionResponse
	err := r.do(ctx, "end session", http.MethodPost, "/chat/end-session", chat.EndSessionRequest{SessionID: sessionID}, &resp)
	return resp, err
}

// SessionInfo fetches the session metadata.
func (r *Remote) SessionInfo(ctx context.Context, sessionID string) (chat.SessionInfo, error) {
	var resp chat.SessionInfo
	err := r.do(ctx, "session info", http.MethodGet, "/chat/session/"+url.PathEscape(sessionID), nil, &resp)
	return resp, err
}

func (r *Remote) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	log.Debug().Str("op", op).Int("status", resp.StatusCode).Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{Op: op, Status: resp.StatusCode, Err: errorFromBody(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func errorFromBody(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body utils.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return errors.New(text)
	}
	return errors.New(http.StatusText(resp.StatusCode))
}
