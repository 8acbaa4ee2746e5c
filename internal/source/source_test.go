package source

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/psychmaster/psychmaster/internal/config"
	"github.com/psychmaster/psychmaster/internal/handler"
	chatHandler "github.com/psychmaster/psychmaster/internal/handler/chat"
	"github.com/psychmaster/psychmaster/internal/keyword"
	"github.com/psychmaster/psychmaster/internal/panel"
	"github.com/psychmaster/psychmaster/internal/service/ai"
	"github.com/psychmaster/psychmaster/internal/service/assessment"
	chatService "github.com/psychmaster/psychmaster/internal/service/chat"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	aiSvc, err := ai.New(context.Background(), nil)
	require.NoError(t, err)
	assessSvc, err := assessment.NewService(context.Background(), nil, assessment.Config{})
	require.NoError(t, err)

	srv := httptest.NewServer(handler.NewRouter(handler.Deps{
		Chat:        chatHandler.New(chatService.NewService(nil), aiSvc, assessSvc),
		CORSOrigins: []string{"*"},
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteAgainstBackend(t *testing.T) {
	srv := newBackend(t)
	remote := NewRemote(srv.URL+"/", srv.Client())
	ctx := context.Background()

	id, err := remote.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	reply, err := remote.SendMessage(ctx, "I feel sad and hopeless lately", id)
	require.NoError(t, err)
	assert.Equal(t, id, reply.SessionID)
	assert.False(t, reply.IsCrisis)
	assert.True(t, slices.Contains(ai.FallbackResponses, reply.Text))

	crisis, err := remote.SendMessage(ctx, "I want to die", id)
	require.NoError(t, err)
	assert.True(t, crisis.IsCrisis)

	report, err := remote.EndSession(ctx, id)
	require.NoError(t, err)
	assert.True(t, report.Success)
	require.NotNil(t, report.Analysis)
	require.NotNil(t, report.Recommendations)

	info, err := remote.SessionInfo(ctx, id)
	require.NoError(t, err)
	assert.False(t, info.Active)
	assert.Equal(t, 2, info.MessageCount)
}

func TestRemoteNon2xxIsNetworkError(t *testing.T) {
	srv := newBackend(t)
	remote := NewRemote(srv.URL, srv.Client())

	_, err := remote.SessionInfo(context.Background(), "missing")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusNotFound, netErr.Status)
	assert.Equal(t, "session info", netErr.Op)
	assert.Contains(t, err.Error(), "Session not found")
}

func TestRemotePlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, srv.Client()).SendMessage(context.Background(), "hi", "s")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusBadGateway, netErr.Status)
	assert.Contains(t, netErr.Err.Error(), "upstream exploded")
}

func TestRemoteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	client := srv.Client()
	srv.Close()

	_, err := NewRemote(url, client).CreateSession(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Zero(t, netErr.Status)
}

func TestRemoteMissingSessionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, srv.Client()).CreateSession(context.Background())
	assert.ErrorIs(t, err, errMissingSessionID)
}

func TestRemoteSendsSessionID(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"response":"ok","session_id":"s-2","is_crisis":false}`))
	}))
	defer srv.Close()

	reply, err := NewRemote(srv.URL, srv.Client()).SendMessage(context.Background(), "hello", "s-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"message": "hello", "session_id": "s-1"}, got)
	assert.Equal(t, panel.Reply{Text: "ok", SessionID: "s-2"}, reply)
}

func TestLocalRespondsFromMatcher(t *testing.T) {
	local := NewLocal(nil, WithDelay(0, 0))
	ctx := context.Background()

	id, err := local.CreateSession(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "local-"))

	reply, err := local.SendMessage(ctx, "I'm so stressed", id)
	require.NoError(t, err)
	assert.Equal(t, id, reply.SessionID)

	var stress keyword.Group
	for _, g := range keyword.DefaultGroups() {
		if g.Name == "stress" {
			stress = g
		}
	}
	assert.Contains(t, stress.Responses, reply.Text)
}

func TestLocalWaitsForDelay(t *testing.T) {
	local := NewLocal(nil, WithDelay(20*time.Millisecond, 10*time.Millisecond))

	start := time.Now()
	_, err := local.SendMessage(context.Background(), "hello", "s")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestLocalHonorsCancellation(t *testing.T) {
	local := NewLocal(nil, WithDelay(time.Hour, 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := local.SendMessage(ctx, "hello", "s")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewSelectsSource(t *testing.T) {
	remote, err := New(&config.ClientConfig{Source: config.SourceRemote, BackendURL: "http://localhost:1"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Remote{}, remote)

	local, err := New(&config.ClientConfig{Source: config.SourceLocal}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Local{}, local)

	_, err = New(&config.ClientConfig{Source: "carrier-pigeon"}, nil)
	assert.Error(t, err)
}

func TestOrdering(t *testing.T) {
	assert.Equal(t, panel.OrderSend, Ordering(&config.ClientConfig{Ordering: config.OrderingSend}))
	assert.Equal(t, panel.OrderArrival, Ordering(&config.ClientConfig{Ordering: config.OrderingArrival}))
}

func TestPanelWithLocalSource(t *testing.T) {
	p := panel.New(NewLocal(nil, WithDelay(time.Millisecond, 0)))
	p.Handle(p.Mount()())

	p.SetInput("Hello")
	cmd := p.Submit()
	require.NotNil(t, cmd)
	assert.True(t, p.Typing())

	p.Handle(cmd())
	msgs := p.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "Hello", msgs[1].Text)
	assert.True(t, msgs[2].IsBot)
	assert.False(t, p.Typing())
}
