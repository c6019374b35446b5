package service

import (
	"path/filepath"
	"testing"

	"course-admin/database"
	"course-admin/logger"

	"github.com/op/go-logging"
)

func setup(t *testing.T) {
	t.Helper()
	logger.InitLogger(logging.ERROR)

	dbPath := filepath.Join(t.TempDir(), "course-admin-test.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("init test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB()
	})
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func uintPtr(n uint) *uint { return &n }

func boolPtr(b bool) *bool { return &b }
