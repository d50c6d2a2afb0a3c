package services

import (
	"github.com/FCT-TaskManager/Backend/internal/access"
	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/store"
)

// loadProjectRole is the shared entry point of every project-scoped
// operation: load the project with its membership rows and resolve the
// caller's role. A missing project is reported before any permission check.
func loadProjectRole(st *store.Store, projectID, userID uint) (*models.Project, access.Role, error) {
	project, err := st.Projects.WithMembers(projectID)
	if err != nil {
		return nil, access.None, notFoundOr(err, "Project not found")
	}

	return project, access.Resolve(project, project.Members, userID), nil
}

// accessRole resolves the role from a project whose Members are already
// loaded.
func accessRole(project *models.Project, userID uint) access.Role {
	return access.Resolve(project, project.Members, userID)
}
