package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dicemaster/scorekeeper/internal/models"
	"github.com/dicemaster/scorekeeper/internal/services/game"
	gameMocks "github.com/dicemaster/scorekeeper/internal/services/game/mocks"
	"github.com/dicemaster/scorekeeper/internal/services/messaging"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *gameMocks.MockService
	handler     *Handler
	router      http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = gameMocks.NewMockService(s.mockCtrl)

	messages, err := messaging.NewService(nil)
	s.Require().NoError(err)

	handler, err := New(&Config{
		GameService: s.mockService,
		Messaging:   messages,
		Locale:      "en",
	})
	s.Require().NoError(err)
	s.handler = handler
	s.router = handler.Router()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestRollReturnsRecord() {
	s.mockService.EXPECT().
		RollDice(gomock.Any(), &game.RollDiceInput{}).
		Return(&game.RollDiceOutput{
			Record: &models.RollRecord{ID: "roll-1", Results: []int{3, 4}, Total: 7},
		}, nil)

	rec := s.do(http.MethodPost, "/api/roll", nil)
	s.Equal(http.StatusOK, rec.Code)

	var out game.RollDiceOutput
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	s.Equal("roll-1", out.Record.ID)
	s.Equal(7, out.Record.Total)
}

func (s *HandlerTestSuite) TestRollWithoutParticipantsIsConflict() {
	s.mockService.EXPECT().
		RollDice(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrNoParticipants)

	rec := s.do(http.MethodPost, "/api/roll", nil)
	s.Equal(http.StatusConflict, rec.Code)

	var body errorBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Add participants before continuing.", body.Error)
}

func (s *HandlerTestSuite) TestAddParticipant() {
	s.mockService.EXPECT().
		AddParticipant(gomock.Any(), &game.AddParticipantInput{Name: "Ana", AvatarID: "dragon"}).
		Return(&game.AddParticipantOutput{
			Participant: &models.Participant{ID: "p-1", Name: "Ana"},
		}, nil)

	rec := s.do(http.MethodPost, "/api/participants", addParticipantRequest{
		Name:     "Ana",
		AvatarID: "dragon",
	})
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestAddParticipantAtCapacity() {
	s.mockService.EXPECT().
		AddParticipant(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrCapacityExceeded)

	rec := s.do(http.MethodPost, "/api/participants", addParticipantRequest{Name: "Eva"})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestAddParticipantBadBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/participants", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestRemoveParticipantNotFound() {
	s.mockService.EXPECT().
		RemoveParticipant(gomock.Any(), &game.RemoveParticipantInput{ParticipantID: "missing"}).
		Return(nil, game.ErrParticipantNotFound)

	rec := s.do(http.MethodDelete, "/api/participants/missing", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestLeaderboard() {
	s.mockService.EXPECT().
		GetLeaderboard(gomock.Any(), gomock.Any()).
		Return(&game.GetLeaderboardOutput{
			Leaderboard: &models.Leaderboard{Standings: []*models.Standing{
				{Rank: 1, Name: "Ana", Score: 42, IsLeader: true},
			}},
		}, nil)

	rec := s.do(http.MethodGet, "/api/leaderboard", nil)
	s.Equal(http.StatusOK, rec.Code)

	var board models.Leaderboard
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &board))
	s.Require().Len(board.Standings, 1)
	s.Equal("Ana", board.Standings[0].Name)
}

func (s *HandlerTestSuite) TestUpdateSettings() {
	want := models.DefaultSettings()
	want.GameMode = models.GameModePoker

	s.mockService.EXPECT().
		UpdateSettings(gomock.Any(), gomock.Any()).
		Return(&game.UpdateSettingsOutput{Settings: want}, nil)

	rec := s.do(http.MethodPut, "/api/settings", want)
	s.Equal(http.StatusOK, rec.Code)

	var got models.Settings
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(models.GameModePoker, got.GameMode)
}

func (s *HandlerTestSuite) TestReset() {
	s.mockService.EXPECT().
		ResetAll(gomock.Any(), gomock.Any()).
		Return(&game.ResetAllOutput{}, nil)

	rec := s.do(http.MethodPost, "/api/reset", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestListModes() {
	rec := s.do(http.MethodGet, "/api/modes", nil)

	s.Equal(http.StatusOK, rec.Code)

	var catalog map[models.GameMode]models.GameModeInfo
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&catalog))
	s.Len(catalog, len(models.GameModeCatalog))
	s.Contains(catalog, models.GameModePoker)
}
