package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"
)

// ErrAlbumNotWritable reports that the target album exists but was not
// created by this application, so the API will refuse to add media to it.
var ErrAlbumNotWritable = errors.New("album is not writable by this application")

// resolveAlbum returns the ID of the album with the given title, creating
// the album if it does not exist. A pre-existing album that is not writable
// is a fatal precondition failure, not something to retry: the user has to
// pick a different name.
func resolveAlbum(ctx context.Context, albumsService AppAlbumsService, title string, limiter *rate.Limiter) (string, error) {
	if err := limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error before listing albums: %w", err)
	}
	existing, err := albumsService.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list albums: %w", err)
	}

	for _, album := range existing {
		if album.Title != title {
			continue
		}
		if !album.IsWriteable {
			return "", fmt.Errorf("album %q exists but %w; choose a different album name", title, ErrAlbumNotWritable)
		}
		logger.Debug("Found existing album",
			slog.String("title", title),
			slog.String("album_id", album.ID))
		return album.ID, nil
	}

	if err := limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error before creating album: %w", err)
	}
	created, err := albumsService.Create(ctx, title)
	if err != nil {
		return "", fmt.Errorf("failed to create album %q: %w", title, err)
	}
	logger.Info("Created album",
		slog.String("title", title),
		slog.String("album_id", created.ID))
	return created.ID, nil
}
