package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/dicemaster/scorekeeper/internal/services/game"
)

type HubTestSuite struct {
	suite.Suite

	hub    *Hub
	server *httptest.Server
}

func (s *HubTestSuite) SetupTest() {
	s.hub = NewHub()
	s.server = httptest.NewServer(http.HandlerFunc(s.hub.ServeWS))
}

func (s *HubTestSuite) TearDownTest() {
	s.hub.Close()
	s.server.Close()
}

func (s *HubTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

func (s *HubTestSuite) TestPublishReachesSubscriber() {
	conn := s.dial()
	defer conn.Close()

	// Subscription happens in the upgrade handler; give it a moment to land
	s.Eventually(func() bool {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		return len(s.hub.conns) == 1
	}, time.Second, 10*time.Millisecond)

	s.hub.Publish(game.Event{
		Type:            game.EventTurnChanged,
		ParticipantName: "Ana",
		Round:           2,
	})

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))

	var received game.Event
	s.Require().NoError(conn.ReadJSON(&received))
	s.Equal(game.EventTurnChanged, received.Type)
	s.Equal("Ana", received.ParticipantName)
	s.Equal(2, received.Round)
}

func (s *HubTestSuite) TestPublishFansOut() {
	first := s.dial()
	defer first.Close()
	second := s.dial()
	defer second.Close()

	s.Eventually(func() bool {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		return len(s.hub.conns) == 2
	}, time.Second, 10*time.Millisecond)

	s.hub.Publish(game.Event{Type: game.EventRoundEnded, Round: 3})

	for _, conn := range []*websocket.Conn{first, second} {
		s.Require().NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))
		var received game.Event
		s.Require().NoError(conn.ReadJSON(&received))
		s.Equal(game.EventRoundEnded, received.Type)
	}
}

func (s *HubTestSuite) TestClosedPeerIsDropped() {
	conn := s.dial()

	s.Eventually(func() bool {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		return len(s.hub.conns) == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	// The reader goroutine unsubscribes once the peer disappears
	s.Eventually(func() bool {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		return len(s.hub.conns) == 0
	}, time.Second, 10*time.Millisecond)

	s.NotPanics(func() {
		s.hub.Publish(game.Event{Type: game.EventGameReset})
	})
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}
