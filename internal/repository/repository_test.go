package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kanban-board-api/internal/database"
	"kanban-board-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repo.db")), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *domain.User {
	t.Helper()
	user := &domain.User{Username: name, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createKanban(t *testing.T, db *gorm.DB, owner *domain.User, title string) *domain.Kanban {
	t.Helper()
	kanban := &domain.Kanban{Title: title, OwnerID: owner.ID}
	require.NoError(t, NewKanbanRepository(db).Create(context.Background(), kanban))
	return kanban
}

func createTask(t *testing.T, db *gorm.DB, owner *domain.User, kanban *domain.Kanban, title string, image *string) *domain.Task {
	t.Helper()
	task := &domain.Task{
		Title:       title,
		Description: "description",
		OwnerID:     owner.ID,
		KanbanID:    kanban.ID,
		Image:       image,
	}
	require.NoError(t, NewTaskRepository(db).Create(context.Background(), task))
	return task
}

func strPtr(s string) *string { return &s }

func idPtr(id uuid.UUID) *uuid.UUID { return &id }
