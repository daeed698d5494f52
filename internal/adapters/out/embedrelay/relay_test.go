package embedrelay

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/edgeselect/internal/domain"
)

func connectAgent(t *testing.T, r *Relay) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(r.AgentHandler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, r.Available, time.Second, 5*time.Millisecond)
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

func TestRelay_UnavailableWithoutAgent(t *testing.T) {
	r := New(zerowrap.Default())

	assert.False(t, r.Available())
	_, err := r.Embed(context.Background(), "https://cdn.example/test_availability.html")
	assert.ErrorIs(t, err, domain.ErrEmbedUnavailable)
}

func TestRelay_EmbedPostRemove(t *testing.T) {
	r := New(zerowrap.Default())
	conn := connectAgent(t, r)
	ctx := context.Background()

	f, err := r.Embed(ctx, "https://cdn.example/test_availability.html")
	require.NoError(t, err)

	embed := readEnvelope(t, conn)
	assert.Equal(t, opEmbed, embed.Op)
	assert.Equal(t, "https://cdn.example/test_availability.html", embed.URL)
	require.NotEmpty(t, embed.Frame)

	require.NoError(t, conn.WriteJSON(envelope{Op: opMessage, Frame: embed.Frame, Origin: "https://cdn.example", Data: domain.MessageInitialized}))

	select {
	case msg := <-f.Messages():
		assert.Equal(t, "https://cdn.example", msg.Origin)
		assert.Equal(t, domain.MessageInitialized, msg.Data)
	case <-time.After(2 * time.Second):
		t.Fatal("message not relayed")
	}

	require.NoError(t, f.Post(ctx, domain.MessageCheckAvailability, "https://cdn.example"))
	post := readEnvelope(t, conn)
	assert.Equal(t, opPost, post.Op)
	assert.Equal(t, embed.Frame, post.Frame)
	assert.Equal(t, domain.MessageCheckAvailability, post.Data)
	assert.Equal(t, "https://cdn.example", post.Target)

	require.NoError(t, f.Remove())
	require.NoError(t, f.Remove())
	remove := readEnvelope(t, conn)
	assert.Equal(t, opRemove, remove.Op)

	_, open := <-f.Messages()
	assert.False(t, open, "messages channel closed after remove")
}

func TestRelay_UntaggedMessagesFanOut(t *testing.T) {
	r := New(zerowrap.Default())
	conn := connectAgent(t, r)
	ctx := context.Background()

	a, err := r.Embed(ctx, "https://a.example/test_availability.html")
	require.NoError(t, err)
	b, err := r.Embed(ctx, "https://b.example/test_availability.html")
	require.NoError(t, err)
	readEnvelope(t, conn)
	readEnvelope(t, conn)

	require.NoError(t, conn.WriteJSON(envelope{Op: opMessage, Origin: "https://ads.example", Data: "hello"}))

	for _, f := range []interface {
		Messages() <-chan domain.EmbedMessage
	}{a, b} {
		select {
		case msg := <-f.Messages():
			assert.Equal(t, "https://ads.example", msg.Origin)
		case <-time.After(2 * time.Second):
			t.Fatal("untagged message not delivered")
		}
	}
}

func TestRelay_AgentDisconnectClosesFrames(t *testing.T) {
	r := New(zerowrap.Default())
	conn := connectAgent(t, r)

	f, err := r.Embed(context.Background(), "https://cdn.example/test_availability.html")
	require.NoError(t, err)
	readEnvelope(t, conn)

	require.NoError(t, conn.Close())

	select {
	case _, open := <-f.Messages():
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("frame not closed on disconnect")
	}
	assert.Eventually(t, func() bool { return !r.Available() }, time.Second, 5*time.Millisecond)
}

func TestRelay_PageHandler(t *testing.T) {
	r := New(zerowrap.Default())
	rec := httptest.NewRecorder()

	r.PageHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/embed/agent.html", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "/embed/agent")
}
