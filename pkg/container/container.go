package container

import (
	"context"
	"fmt"

	"webmusic-backend/internal/config"
	rediscache "webmusic-backend/internal/infrastructure/cache"
	"webmusic-backend/internal/infrastructure/database"
	"webmusic-backend/pkg/cache"
	"webmusic-backend/pkg/jwt"

	albumhandler "webmusic-backend/internal/domains/album/handler"
	albumrepo "webmusic-backend/internal/domains/album/repository"
	albumservice "webmusic-backend/internal/domains/album/service"
	artisthandler "webmusic-backend/internal/domains/artist/handler"
	artistrepo "webmusic-backend/internal/domains/artist/repository"
	artistservice "webmusic-backend/internal/domains/artist/service"
	commenthandler "webmusic-backend/internal/domains/comment/handler"
	commentrepo "webmusic-backend/internal/domains/comment/repository"
	commentservice "webmusic-backend/internal/domains/comment/service"
	followhandler "webmusic-backend/internal/domains/follow/handler"
	followrepo "webmusic-backend/internal/domains/follow/repository"
	followservice "webmusic-backend/internal/domains/follow/service"
	genrehandler "webmusic-backend/internal/domains/genre/handler"
	genrerepo "webmusic-backend/internal/domains/genre/repository"
	genreservice "webmusic-backend/internal/domains/genre/service"
	historyhandler "webmusic-backend/internal/domains/history/handler"
	historyrepo "webmusic-backend/internal/domains/history/repository"
	historyservice "webmusic-backend/internal/domains/history/service"
	likehandler "webmusic-backend/internal/domains/like/handler"
	likerepo "webmusic-backend/internal/domains/like/repository"
	likeservice "webmusic-backend/internal/domains/like/service"
	playlisthandler "webmusic-backend/internal/domains/playlist/handler"
	playlistrepo "webmusic-backend/internal/domains/playlist/repository"
	playlistservice "webmusic-backend/internal/domains/playlist/service"
	songhandler "webmusic-backend/internal/domains/song/handler"
	songrepo "webmusic-backend/internal/domains/song/repository"
	songservice "webmusic-backend/internal/domains/song/service"
	userhandler "webmusic-backend/internal/domains/user/handler"
	userrepo "webmusic-backend/internal/domains/user/repository"
	userservice "webmusic-backend/internal/domains/user/service"
)

// Container wires configuration, infrastructure and every domain layer
// in dependency order.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	GenreHandler    *genrehandler.Handler
	ArtistHandler   *artisthandler.Handler
	UserHandler     *userhandler.Handler
	SongHandler     *songhandler.Handler
	AlbumHandler    *albumhandler.Handler
	PlaylistHandler *playlisthandler.Handler
	CommentHandler  *commenthandler.Handler
	LikeHandler     *likehandler.Handler
	FollowHandler   *followhandler.Handler
	HistoryHandler  *historyhandler.Handler
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c.Cache = rediscache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	pool := c.DB.Pool

	genreService := genreservice.NewGenreService(genrerepo.NewPostgresRepository(pool, c.Cache))
	artistService := artistservice.NewArtistService(artistrepo.NewPostgresRepository(pool, c.Cache))
	userService := userservice.NewUserService(userrepo.NewPostgresRepository(pool), c.JWTManager)
	songService := songservice.NewSongService(songrepo.NewPostgresRepository(pool))
	albumService := albumservice.NewAlbumService(albumrepo.NewPostgresRepository(pool))
	playlistService := playlistservice.NewPlaylistService(playlistrepo.NewPostgresRepository(pool))
	commentService := commentservice.NewCommentService(commentrepo.NewPostgresRepository(pool))
	likeService := likeservice.NewLikeService(likerepo.NewPostgresRepository(pool))
	followService := followservice.NewFollowService(followrepo.NewPostgresRepository(pool))
	historyService := historyservice.NewHistoryService(historyrepo.NewPostgresRepository(pool))

	c.GenreHandler = genrehandler.NewHandler(genreService)
	c.ArtistHandler = artisthandler.NewHandler(artistService)
	c.UserHandler = userhandler.NewHandler(userService)
	c.SongHandler = songhandler.NewHandler(songService)
	c.AlbumHandler = albumhandler.NewHandler(albumService)
	c.PlaylistHandler = playlisthandler.NewHandler(playlistService)
	c.CommentHandler = commenthandler.NewHandler(commentService)
	c.LikeHandler = likehandler.NewHandler(likeService)
	c.FollowHandler = followhandler.NewHandler(followService)
	c.HistoryHandler = historyhandler.NewHandler(historyService)

	return c, nil
}

func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
