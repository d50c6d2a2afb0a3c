package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/FCT-TaskManager/Backend/db"
	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/store"
)

// newTestStore opens a fresh in-memory database for one test.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	return store.New(database)
}

func createUser(t *testing.T, st *store.Store, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
	}
	require.NoError(t, st.Users.Create(user))

	return user
}

func createProject(t *testing.T, st *store.Store, ownerID uint, name string) *models.Project {
	t.Helper()

	project, err := NewProjectService(st).Create(ownerID, name, "")
	require.NoError(t, err)

	return project
}

func addMember(t *testing.T, st *store.Store, projectID, userID uint, role string) {
	t.Helper()

	require.NoError(t, st.Members.Create(&models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	}))
}

func requireServiceError(t *testing.T, err error, status int, message string) {
	t.Helper()

	svcErr, ok := AsError(err)
	require.True(t, ok, "expected a service error, got %v", err)
	require.Equal(t, status, svcErr.Status)
	require.Equal(t, message, svcErr.Message)
}
