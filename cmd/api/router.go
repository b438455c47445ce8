package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/shared/middleware"
	"webmusic-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"name":     c.Config.App.Name,
			"version":  c.Config.App.Version,
			"database": dbStatus,
		})
	})

	auth := middleware.Auth(c.JWTManager)
	admin := middleware.RequireAdmin()

	api := router.Group("/api")
	{
		api.POST("/auth/register", c.UserHandler.Register)
		api.POST("/auth/login", c.UserHandler.Login)

		songs := api.Group("/songs")
		{
			songs.GET("", c.SongHandler.List)
			songs.GET("/popular", c.SongHandler.GetPopular)
			songs.GET("/recent", c.SongHandler.GetRecent)
			songs.GET("/:id", c.SongHandler.GetByID)
			songs.GET("/:id/comments", c.CommentHandler.ListBySong)
			songs.POST("", c.SongHandler.Create)
			songs.PUT("/:id", c.SongHandler.Update)
			songs.DELETE("/:id", c.SongHandler.Delete)
			songs.POST("/:id/approve", auth, admin, c.SongHandler.Approve)
			songs.POST("/:id/reject", auth, admin, c.SongHandler.Reject)
			songs.PUT("/:id/like", auth, c.LikeHandler.Like)
			songs.DELETE("/:id/like", auth, c.LikeHandler.Unlike)
		}

		albums := api.Group("/albums")
		{
			albums.GET("", c.AlbumHandler.List)
			albums.GET("/:id", c.AlbumHandler.GetByID)
			albums.POST("", c.AlbumHandler.Create)
			albums.PUT("/:id", c.AlbumHandler.Update)
			albums.DELETE("/:id", c.AlbumHandler.Delete)
		}

		playlists := api.Group("/playlists")
		{
			playlists.GET("", c.PlaylistHandler.List)
			playlists.GET("/:id", c.PlaylistHandler.GetByID)
			playlists.POST("", c.PlaylistHandler.Create)
			playlists.PUT("/:id", c.PlaylistHandler.Update)
			playlists.DELETE("/:id", c.PlaylistHandler.Delete)
			playlists.GET("/:id/songs", c.PlaylistHandler.GetSongs)
			playlists.POST("/:id/songs", c.PlaylistHandler.AddSong)
			playlists.DELETE("/:id/songs/:songId", c.PlaylistHandler.RemoveSong)
		}

		artists := api.Group("/artists")
		{
			artists.GET("", c.ArtistHandler.List)
			artists.GET("/:id", c.ArtistHandler.GetByID)
			artists.POST("", auth, admin, c.ArtistHandler.Create)
			artists.PUT("/:id", auth, admin, c.ArtistHandler.Update)
			artists.DELETE("/:id", auth, admin, c.ArtistHandler.Delete)
		}

		genres := api.Group("/genres")
		{
			genres.GET("", c.GenreHandler.List)
			genres.GET("/:id", c.GenreHandler.GetByID)
			genres.POST("", auth, admin, c.GenreHandler.Create)
			genres.PUT("/:id", auth, admin, c.GenreHandler.Update)
			genres.DELETE("/:id", auth, admin, c.GenreHandler.Delete)
		}

		users := api.Group("/users")
		{
			users.GET("", c.UserHandler.List)
			users.GET("/me", auth, c.UserHandler.Me)
			users.GET("/:id", c.UserHandler.GetByID)
			users.POST("", c.UserHandler.Create)
			users.PUT("/:id", c.UserHandler.Update)
			users.DELETE("/:id", c.UserHandler.Delete)
			users.POST("/check-email", c.UserHandler.CheckEmail)
			users.POST("/check-username", c.UserHandler.CheckUsername)
			users.GET("/:id/likes", c.LikeHandler.ListByUser)
			users.PUT("/:id/follow", auth, c.FollowHandler.Follow)
			users.DELETE("/:id/follow", auth, c.FollowHandler.Unfollow)
			users.GET("/:id/followers", c.FollowHandler.Followers)
			users.GET("/:id/following", c.FollowHandler.Following)
			users.GET("/:id/history", c.HistoryHandler.RecentByUser)
		}

		comments := api.Group("/comments")
		{
			comments.POST("", c.CommentHandler.Create)
			comments.PUT("/:id", c.CommentHandler.Update)
			comments.DELETE("/:id", c.CommentHandler.Delete)
		}

		api.POST("/history", c.HistoryHandler.Record)
	}

	return router
}
