package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/sporthub/internal/app/controllers"
	"github.com/yigit/sporthub/internal/middleware"
)

// Controllers groups every handler the route table needs.
type Controllers struct {
	Auth     *controllers.AuthController
	Media    *controllers.MediaController
	Posts    *controllers.PostController
	Articles *controllers.ArticleController
	Events   *controllers.EventController
	Sports   *controllers.SportController
	Profiles *controllers.ProfileController
	System   *controllers.SystemController
}

// SetupRouter configures all application routes. Paths are served at the
// root, without a version prefix, so existing clients keep working.
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/test", c.System.Hello)
	router.GET("/health", c.System.Health)

	// --- Public routes ---
	router.POST("/register", c.Auth.Register)
	router.POST("/login", c.Auth.Login)

	router.GET("/media/file/:filename", c.Media.File)
	router.GET("/media/id/:id_media", c.Media.FileByMediaID)

	router.GET("/posts-txt", c.Posts.ListTextPosts)
	router.GET("/posts-txt/:id", c.Posts.GetTextPost)
	router.GET("/posts-media", c.Posts.ListMediaPosts)
	router.GET("/posts-media/:id", c.Posts.GetMediaPost)

	router.GET("/articles", c.Articles.ListArticles)
	router.GET("/articles/:id", c.Articles.GetArticle)

	router.GET("/events", c.Events.ListEvents)
	router.GET("/events/:id", c.Events.GetEvent)
	router.GET("/events/:id/participants", c.Events.ListParticipants)
	router.GET("/events/:id/participants/count", c.Events.CountParticipants)

	router.GET("/sports", c.Sports.ListSports)
	router.GET("/sports/:id", c.Sports.GetSport)

	// Profile setup runs before the client has a token. The second step is
	// served with and without the trailing slash.
	router.POST("/profil-1-2", c.Profiles.CreateProfile)
	router.PUT("/profil-2-2", c.Profiles.UpdateProfile)
	router.PUT("/profil-2-2/", c.Profiles.UpdateProfile)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/upload", c.Media.Upload)
		authenticated.GET("/media/:user_id", c.Media.ListByUser)

		authenticated.POST("/posts-txt", c.Posts.CreateTextPost)
		authenticated.POST("/posts-txt/:id/like", c.Posts.LikeTextPost)
		authenticated.POST("/posts-media", c.Posts.CreateMediaPost)

		authenticated.POST("/articles", c.Articles.CreateArticle)

		authenticated.POST("/events", c.Events.CreateEvent)
		authenticated.PUT("/events/:id", c.Events.UpdateEvent)
		authenticated.DELETE("/events/:id", c.Events.DeleteEvent)
		authenticated.POST("/events/:id/participants", c.Events.JoinEvent)
		authenticated.DELETE("/events/:id/participants", c.Events.LeaveEvent)
	}
}
