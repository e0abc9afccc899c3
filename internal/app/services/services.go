package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/auth"
	"github.com/yigit/sporthub/internal/pkg/filestorage"
	"github.com/yigit/sporthub/internal/pkg/helpers"
	"github.com/yigit/sporthub/internal/pkg/metrics"
)

// Client-facing messages for store failures. The cause is only logged.
const (
	msgInternal = "internal error"
)

// Deps are the collaborators shared by every service.
type Deps struct {
	Repos   *repositories.Repositories
	Storage filestorage.FileStorage
	JWT     *auth.JWTService
	Metrics *metrics.Metrics
	Logger  zerolog.Logger

	// AtomicWrites runs multi-write pipelines inside one transaction.
	AtomicWrites bool
}

// Services holds every service the controllers use.
type Services struct {
	Auth       AuthService
	Media      MediaService
	TextPosts  TextPostService
	MediaPosts MediaPostService
	Articles   ArticleService
	Events     EventService
	Sports     SportService
	Profiles   ProfileService
}

// NewServices wires all services over the same dependencies.
func NewServices(d Deps) *Services {
	b := base{
		repos:   d.Repos,
		storage: d.Storage,
		metrics: d.Metrics,
		atomic:  d.AtomicWrites,
		logger:  d.Logger,
	}
	return &Services{
		Auth:       NewAuthService(b.named("auth"), d.JWT),
		Media:      NewMediaService(b.named("media")),
		TextPosts:  NewTextPostService(b.named("posts")),
		MediaPosts: NewMediaPostService(b.named("media_posts")),
		Articles:   NewArticleService(b.named("articles")),
		Events:     NewEventService(b.named("events")),
		Sports:     NewSportService(b.named("sports")),
		Profiles:   NewProfileService(b.named("profiles")),
	}
}

// base carries what the pipelines share.
type base struct {
	repos   *repositories.Repositories
	storage filestorage.FileStorage
	metrics *metrics.Metrics
	atomic  bool
	logger  zerolog.Logger
}

func (b base) named(service string) base {
	b.logger = b.logger.With().Str("service", service).Logger()
	return b
}

// run executes a multi-step pipeline. Steps run one after another on the
// shared store unless atomic writes are on, in which case they share one
// transaction and a failure undoes every row written so far.
func (b base) run(ctx context.Context, fn repositories.TxFunc) error {
	if !b.atomic {
		return fn(ctx, b.repos)
	}
	return b.repos.WithTransaction(ctx, fn)
}

// lookupUser resolves the acting user from a token-derived id.
func (b base) lookupUser(ctx context.Context, repos *repositories.Repositories, userID int64) (*models.User, error) {
	user, err := repos.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError("user not found")
		}
		b.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to get user")
		return nil, apperrors.NewInternalError(msgInternal, fmt.Errorf("error getting user: %w", err))
	}
	return user, nil
}

// writeMedia stores the upload on disk and then records it. The media row is
// only inserted once the file is written.
func (b base) writeMedia(ctx context.Context, repos *repositories.Repositories, userID int64, fh *multipart.FileHeader) (int64, error) {
	stored, err := b.storage.Save(fh)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedFileType) || errors.Is(err, apperrors.ErrFileRequired) {
			b.metrics.ObserveUpload("rejected")
			return 0, err
		}
		b.metrics.ObserveUpload("failed")
		b.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to store uploaded file")
		return 0, apperrors.NewInternalError("error uploading media", err)
	}

	mediaID, err := repos.Media.Create(ctx, &models.Media{
		UserID:   userID,
		Filename: &stored.Filename,
		Filetype: &stored.MimeType,
		Filepath: &stored.Path,
	})
	if err != nil {
		b.metrics.ObserveUpload("failed")
		b.logger.Error().Err(err).Int64("userID", userID).Str("file", stored.Filename).Msg("Failed to insert media row")
		return 0, apperrors.NewInternalError("error inserting media", err)
	}

	b.metrics.ObserveUpload("stored")
	b.logger.Debug().Int64("userID", userID).Int64("mediaID", mediaID).Str("file", stored.Filename).Msg("Media stored")
	return mediaID, nil
}

// listPage reads one list page and computes nextPage from its length.
func listPage[T any](ctx context.Context, b base, what string, p helpers.Page,
	list func(context.Context, helpers.Page) ([]T, error)) ([]T, *int, error) {
	items, err := list(ctx, p)
	if err != nil {
		b.logger.Error().Err(err).Int("page", p.Page).Int("limit", p.Limit).Msgf("Failed to list %s", what)
		return nil, nil, apperrors.NewInternalError("error retrieving "+what, err)
	}
	return items, helpers.NextPage(len(items), p), nil
}

// getOne loads a single row, mapping a miss to a not-found error with the
// given message.
func getOne[T any](ctx context.Context, b base, id int64, notFound string,
	get func(context.Context, int64) (*T, error)) (*T, error) {
	item, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(notFound)
		}
		b.logger.Error().Err(err).Int64("id", id).Msg("Failed to get record")
		return nil, apperrors.NewInternalError(msgInternal, err)
	}
	return item, nil
}
