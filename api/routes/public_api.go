package routes

import (
	"bizlink/api/handlers"
	"bizlink/api/middleware"
	"bizlink/services"
	"bizlink/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers объединяет обработчики, которые монтируются на публичный API
type Handlers struct {
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Requests      *handlers.RequestHandler
	Relationships *handlers.RelationshipHandler
	Invites       *handlers.InviteHandler
	Notifications *handlers.NotificationHandler

	UserService *services.UserService
}

// NewHandlers собирает обработчики поверх хранилищ
func NewHandlers(stores *store.Stores, notifier services.LifecycleNotifier) *Handlers {
	userService := services.NewUserService(stores.Users)
	return &Handlers{
		Auth:          &handlers.AuthHandler{Users: userService},
		Users:         &handlers.UserHandler{Users: userService},
		Requests:      &handlers.RequestHandler{Service: services.NewRequestService(stores.Requests, stores.Users, notifier)},
		Relationships: &handlers.RelationshipHandler{Service: services.NewRelationshipService(stores.Requests, stores.Users)},
		Invites:       &handlers.InviteHandler{Service: services.NewInviteService(stores.Invites, stores.Users)},
		Notifications: &handlers.NotificationHandler{Store: stores.Notifications},
		UserService:   userService,
	}
}

func PublicApi(router *gin.Engine, h *Handlers) *gin.RouterGroup {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	publicEndpoints := router.Group("/api/v1/")
	{
		publicEndpoints.POST("auth/register", h.Auth.Register)
		publicEndpoints.POST("auth/login", h.Auth.Login)
		publicEndpoints.GET("user/get/:id", h.Users.Get)

		// Запросы на отношения
		publicEndpoints.POST("requests", h.Requests.Send)
		publicEndpoints.GET("requests/users-type", h.Requests.ListByUserAndType)
		publicEndpoints.GET("requests/:id", h.Requests.Get)
		publicEndpoints.PUT("requests/:id", h.Requests.Update)
		publicEndpoints.DELETE("requests/:id", h.Requests.Delete)

		// Проекции отношений
		publicEndpoints.GET("users/:id/followers", h.Relationships.Followers)
		publicEndpoints.GET("users/:id/following", h.Relationships.Following)
		publicEndpoints.GET("users/:id/friends", h.Relationships.Friends)
		publicEndpoints.GET("users/:id/relationships", h.Relationships.Summary)

		// Приглашения в организации
		publicEndpoints.POST("invites", h.Invites.Create)
		publicEndpoints.GET("invites/entity", h.Invites.ListByEntity)
		publicEndpoints.DELETE("invites/entity", h.Invites.DeleteByEntity)
		publicEndpoints.GET("invites/:id", h.Invites.Get)
		publicEndpoints.PUT("invites/:id", h.Invites.Update)
		publicEndpoints.DELETE("invites/:id", h.Invites.Delete)
	}

	authEndpoints := router.Group("/api/v1/")
	authEndpoints.Use(middleware.AuthMiddleware(h.UserService))
	{
		authEndpoints.POST("auth/logout", h.Auth.Logout)
		authEndpoints.GET("notifications", h.Notifications.List)
		authEndpoints.POST("notifications/:id/read", h.Notifications.MarkRead)
		authEndpoints.GET("ws/notify", handlers.WSNotifyHandler)
	}

	return publicEndpoints
}
