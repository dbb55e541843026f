package match

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/team"
	"github.com/meutimefc/api/pkg/permissions"
	"github.com/meutimefc/api/pkg/token"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMatchRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&team.Team{}, &Match{}))

	cfg := &config.Config{}
	cfg.App.Env = "development"
	cfg.JWT.Secret = "match-test-secret"
	cfg.JWT.ExpiryHours = 24

	r := gin.New()
	api := r.Group("/api")
	MatchRoutes(api, db, cfg, team.NewTeamRepository(db))
	return r, db, cfg
}

func adminRequest(t *testing.T, r *gin.Engine, cfg *config.Config, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	tok, err := token.Generate(1, permissions.RoleAdmin, 1, false, permissions.Resolve(permissions.RoleAdmin), cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func publicRequest(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedTeam(t *testing.T, db *gorm.DB) *team.Team {
	t.Helper()
	tm := &team.Team{Name: "Unidos da Vila", Slug: "unidos-da-vila"}
	require.NoError(t, db.Create(tm).Error)
	return tm
}

func TestCreateMatchUpdatesNextMatchPointer(t *testing.T) {
	r, db, cfg := setupMatchRouter(t)
	tm := seedTeam(t, db)

	kickoff := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	w := adminRequest(t, r, cfg, "POST", fmt.Sprintf("/api/teams/%d/matches", tm.ID), gin.H{
		"opponent":   "Real Periferia",
		"venue":      "Campo do Bairro",
		"kickoff_at": kickoff.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var sched ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sched))
	require.NotNil(t, sched.NextMatch)
	require.Equal(t, "Real Periferia", sched.NextMatch.Opponent)
	require.Empty(t, sched.LastMatches)

	var reloaded team.Team
	require.NoError(t, db.First(&reloaded, tm.ID).Error)
	require.NotNil(t, reloaded.NextMatchID)
	require.Equal(t, sched.NextMatch.ID, *reloaded.NextMatchID)
}

func TestScheduleEndpointPartitionsMatches(t *testing.T) {
	r, db, _ := setupMatchRouter(t)
	tm := seedTeam(t, db)

	now := time.Now().UTC()
	past := &Match{TeamID: tm.ID, Opponent: "Velha Guarda", KickoffAt: now.Add(-24 * time.Hour)}
	soon := &Match{TeamID: tm.ID, Opponent: "Juventude", KickoffAt: now.Add(24 * time.Hour)}
	later := &Match{TeamID: tm.ID, Opponent: "Atletico Azul", KickoffAt: now.Add(72 * time.Hour)}
	require.NoError(t, db.Create(past).Error)
	require.NoError(t, db.Create(soon).Error)
	require.NoError(t, db.Create(later).Error)

	w := publicRequest(r, fmt.Sprintf("/api/teams/%d/schedule", tm.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var sched ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sched))
	require.NotNil(t, sched.NextMatch)
	require.Equal(t, "Juventude", sched.NextMatch.Opponent)
	require.Len(t, sched.LastMatches, 2)
	require.Equal(t, "Atletico Azul", sched.LastMatches[0].Opponent)
	require.Equal(t, "Velha Guarda", sched.LastMatches[1].Opponent)
}

func TestDeleteLastFutureMatchClearsPointer(t *testing.T) {
	r, db, cfg := setupMatchRouter(t)
	tm := seedTeam(t, db)

	kickoff := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	w := adminRequest(t, r, cfg, "POST", fmt.Sprintf("/api/teams/%d/matches", tm.ID), gin.H{
		"opponent":   "Juventude",
		"kickoff_at": kickoff.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var sched ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sched))

	w = adminRequest(t, r, cfg, "DELETE", fmt.Sprintf("/api/teams/%d/matches/%d", tm.ID, sched.NextMatch.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded team.Team
	require.NoError(t, db.First(&reloaded, tm.ID).Error)
	require.Nil(t, reloaded.NextMatchID)
}

func TestUpdateMatchRescheduleMovesPointer(t *testing.T) {
	r, db, cfg := setupMatchRouter(t)
	tm := seedTeam(t, db)

	now := time.Now().UTC()
	first := &Match{TeamID: tm.ID, Opponent: "Juventude", KickoffAt: now.Add(24 * time.Hour)}
	second := &Match{TeamID: tm.ID, Opponent: "Atletico Azul", KickoffAt: now.Add(48 * time.Hour)}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	// Moving the nearer fixture into the past promotes the other one.
	pastKickoff := now.Add(-2 * time.Hour).Truncate(time.Second)
	w := adminRequest(t, r, cfg, "PUT", fmt.Sprintf("/api/teams/%d/matches/%d", tm.ID, first.ID), gin.H{
		"kickoff_at": pastKickoff.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var sched ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sched))
	require.NotNil(t, sched.NextMatch)
	require.Equal(t, second.ID, sched.NextMatch.ID)

	var reloaded team.Team
	require.NoError(t, db.First(&reloaded, tm.ID).Error)
	require.NotNil(t, reloaded.NextMatchID)
	require.Equal(t, second.ID, *reloaded.NextMatchID)
}

func TestMatchMutationsRequirePermission(t *testing.T) {
	r, db, cfg := setupMatchRouter(t)
	tm := seedTeam(t, db)

	body, _ := json.Marshal(gin.H{"opponent": "X", "kickoff_at": time.Now().Add(time.Hour).Format(time.RFC3339)})

	// No token at all.
	req := httptest.NewRequest("POST", fmt.Sprintf("/api/teams/%d/matches", tm.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// A fan token lacks matches:manage.
	tok, err := token.Generate(2, permissions.RoleFan, tm.ID, false, permissions.Resolve(permissions.RoleFan), cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	require.NoError(t, err)
	req = httptest.NewRequest("POST", fmt.Sprintf("/api/teams/%d/matches", tm.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestLiveEndpoint(t *testing.T) {
	r, db, _ := setupMatchRouter(t)
	tm := seedTeam(t, db)

	// No upcoming stream yet.
	w := publicRequest(r, fmt.Sprintf("/api/teams/%d/live", tm.ID))
	require.Equal(t, http.StatusNotFound, w.Code)

	m := &Match{
		TeamID:    tm.ID,
		Opponent:  "Juventude",
		KickoffAt: time.Now().Add(time.Hour),
		StreamURL: "https://stream.example.com/live/123",
	}
	require.NoError(t, db.Create(m).Error)

	w = publicRequest(r, fmt.Sprintf("/api/teams/%d/live", tm.ID))
	require.Equal(t, http.StatusOK, w.Code)
	var got Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, m.StreamURL, got.StreamURL)
}
