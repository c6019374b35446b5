package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"course-admin/database"
	"course-admin/logger"
	"course-admin/web/entity"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds a router over a throwaway database, mirroring the
// groups the server registers.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	logger.InitLogger(logging.ERROR)
	dbPath := filepath.Join(t.TempDir(), "course-admin-test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() { _ = database.CloseDB() })

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	NewIndexController(engine.Group("/"))
	NewUserController(engine.Group("/users"))

	admin := engine.Group("/admin")
	NewArticleController(admin.Group("/articles"))
	NewCategoryController(admin.Group("/categories"))
	NewCourseController(admin.Group("/courses"))
	NewSettingController(admin.Group("/settings"))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, entity.Msg{
			Message: "resource does not exist.",
			Errors:  []string{"route was not found."},
		})
	})

	return engine
}

type envelope struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	Errors  []string       `json:"errors"`
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}
