package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/FCT-TaskManager/Backend/internal/handlers"
	"github.com/FCT-TaskManager/Backend/internal/middleware"
	"github.com/FCT-TaskManager/Backend/internal/services"
	"github.com/FCT-TaskManager/Backend/internal/store"
	"github.com/FCT-TaskManager/Backend/internal/types"
)

func NewRouter(st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(st.Users)
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(st))
	kanbanHandler := handlers.NewKanbanHandler(services.NewKanbanService(st))
	collabHandler := handlers.NewCollabHandler(services.NewCollabService(st))
	notificationHandler := handlers.NewNotificationHandler(services.NewNotificationService(st))
	timeEntryHandler := handlers.NewTimeEntryHandler(services.NewTimeEntryService(st))
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(st))

	protected := middleware.AuthMiddleware(st.Users)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", protected, authHandler.Me)
		}

		projects := api.Group("/projects", protected)
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.GET("/:id", projectHandler.Get)
			projects.DELETE("/:id", projectHandler.Delete)
			projects.GET("/:id/columns", projectHandler.Columns)
			projects.GET("/:id/kanban-tasks", projectHandler.KanbanTasks)
		}

		kanban := api.Group("/kanban-tasks", protected)
		{
			kanban.POST("", kanbanHandler.Create)
			kanban.PUT("/:id", kanbanHandler.Update)
			kanban.PUT("/:id/move", kanbanHandler.Move)
			kanban.POST("/reorder", kanbanHandler.Reorder)
			kanban.DELETE("/:id", kanbanHandler.Delete)
		}

		invitations := api.Group("/invitations", protected)
		{
			invitations.GET("/project/:project_id/available-users", collabHandler.AvailableUsers)
			invitations.POST("/invite", collabHandler.Invite)
			invitations.POST("/respond", collabHandler.Respond)
			invitations.GET("/pending", collabHandler.Pending)
		}

		notifications := api.Group("/notifications", protected)
		{
			notifications.GET("", notificationHandler.List)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:notification_id/read", notificationHandler.MarkRead)
		}

		timeEntries := api.Group("/time-entries", protected)
		{
			timeEntries.GET("", timeEntryHandler.List)
			timeEntries.POST("", timeEntryHandler.Create)
			timeEntries.PUT("/:id", timeEntryHandler.Update)
			timeEntries.DELETE("/:id", timeEntryHandler.Delete)
		}

		tasks := api.Group("/tasks", protected)
		{
			tasks.GET("", taskHandler.List)
			tasks.POST("", taskHandler.Create)
			tasks.GET("/:id", taskHandler.Get)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)
		}
	}

	return r
}
