package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"

	"github.com/ccfrost/albumup/albumupconfig"
	"github.com/ccfrost/albumup/commands/googlephotos"
)

// FileFailure records one enumerated file that did not make it into the
// album, with the error that stopped it.
type FileFailure struct {
	Path string
	Err  error
}

// Report tallies the outcome of an Upload run. Every enumerated file ends up
// either in Uploaded or in Failures; nothing is silently dropped.
type Report struct {
	AlbumTitle string
	AlbumID    string
	Uploaded   int
	Failures   []FileFailure
}

// Failed returns the number of files that failed.
func (r *Report) Failed() int {
	return len(r.Failures)
}

// pendingItem pairs an enumerated file with the upload token obtained for it.
type pendingItem struct {
	file  itemFileInfo
	token string
}

// Upload uploads the files in dir to the Google Photos album named
// albumTitle, creating the album if it does not exist. Uploading is
// two-phase: first every file's raw bytes are streamed up for an upload
// token, then the tokens are redeemed in chunks of config.ChunkSize against
// the album. Rate-limited calls are retried with exponential backoff;
// any other per-file or per-chunk error is recorded in the report and the
// run continues. The returned error is reserved for preconditions (missing
// directory, unresolvable album) and context cancellation.
func Upload(ctx context.Context, config albumupconfig.AlbumupConfig, albumTitle, dir string, recursive bool, gphotosClient GPhotosClient) (*Report, error) {
	files, totalSize, err := listFiles(dir, recursive)
	if err != nil {
		return nil, err
	}

	// Client-side rate limit shared by every Photos API call in this run.
	limiter := rate.NewLimiter(rate.Every(time.Second/time.Duration(config.RequestsPerSecond)), config.Burst)

	albumID, err := resolveAlbum(ctx, gphotosClient.Albums(), albumTitle, limiter)
	if err != nil {
		return nil, err
	}

	report := &Report{AlbumTitle: albumTitle, AlbumID: albumID}

	if len(files) == 0 {
		logger.Info("No files found to upload", slog.String("directory", dir))
		return report, nil
	}
	logger.Info("Found files to upload",
		slog.Int("count", len(files)),
		slog.Int64("total_size_bytes", totalSize))

	// --- Phase 1: raw byte uploads, one token per file ---

	bar := NewProgressBar(totalSize, "Uploading")

	var pending []pendingItem
	uploader := gphotosClient.Uploader()
	for _, file := range files {
		token, err := uploadFileForToken(ctx, config.Backoff, uploader, file, limiter, bar)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			logger.Error("Failed to upload file, skipping",
				slog.String("file", file.path),
				slog.String("error", err.Error()))
			report.Failures = append(report.Failures, FileFailure{Path: file.path, Err: err})
			continue
		}
		pending = append(pending, pendingItem{file: file, token: token})
	}

	_ = bar.Finish() // Ignore error on finish

	// --- Phase 2: redeem tokens in chunks against the album ---

	mediaItemsService := gphotosClient.MediaItems()
	for start := 0; start < len(pending); start += config.ChunkSize {
		end := min(start+config.ChunkSize, len(pending))
		if err := createChunk(ctx, config.Backoff, mediaItemsService, albumID, pending[start:end], limiter, report); err != nil {
			return nil, err
		}
	}

	logger.Debug("Upload finished",
		slog.Int("uploaded", report.Uploaded),
		slog.Int("failed", report.Failed()))
	return report, nil
}

// uploadFileForToken uploads a single file's bytes and returns the upload
// token for it, retrying while the API answers 429. It updates bar with the
// file's size once the attempt is over, success or not.
func uploadFileForToken(ctx context.Context, backoffCfg albumupconfig.BackoffConfig, uploader AppUploader, file itemFileInfo, limiter *rate.Limiter, bar *progressbar.ProgressBar) (string, error) {
	fileBasename := filepath.Base(file.path)
	bar.Describe(fmt.Sprintf("Uploading %s", fileBasename))

	// Defer the progress bar update to ensure it happens once per file attempt.
	defer bar.Add64(file.size)

	var token string
	err := retryRateLimited(ctx, backoffCfg, func() error {
		// Wait before uploading file
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error before uploading %s: %w", fileBasename, err)
		}
		t, err := uploader.UploadFile(ctx, file.path)
		if err != nil {
			return err
		}
		token = t
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file %s: %w", fileBasename, err)
	}
	return token, nil
}

// createChunk redeems one chunk of upload tokens against the album and
// records per-file outcomes in the report. A chunk-level failure marks every
// file in the chunk as failed; only context cancellation is returned.
func createChunk(ctx context.Context, backoffCfg albumupconfig.BackoffConfig, mediaItemsService AppMediaItemsService, albumID string, chunk []pendingItem, limiter *rate.Limiter, report *Report) error {
	items := make([]googlephotos.NewMediaItem, len(chunk))
	for i, p := range chunk {
		items[i] = googlephotos.NewMediaItem{
			FileName:    filepath.Base(p.file.path),
			UploadToken: p.token,
		}
	}

	var results []googlephotos.BatchCreateResult
	err := retryRateLimited(ctx, backoffCfg, func() error {
		// Wait before creating media items
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error before creating media items: %w", err)
		}
		r, err := mediaItemsService.BatchCreate(ctx, albumID, items)
		if err != nil {
			return err
		}
		results = r
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		logger.Error("Failed to create media items for chunk, skipping",
			slog.Int("chunk_size", len(chunk)),
			slog.String("error", err.Error()))
		for _, p := range chunk {
			report.Failures = append(report.Failures, FileFailure{Path: p.file.path, Err: err})
		}
		return nil
	}

	// The API echoes the upload token in each result; individual tokens can
	// be rejected inside an otherwise successful batch.
	resultByToken := make(map[string]googlephotos.BatchCreateResult, len(results))
	for _, result := range results {
		resultByToken[result.UploadToken] = result
	}
	for _, p := range chunk {
		result, found := resultByToken[p.token]
		if found && result.Created() {
			logger.Debug("Created media item",
				slog.String("file", p.file.path),
				slog.String("media_id", result.MediaItem.ID))
			report.Uploaded++
			continue
		}
		message := "no result returned for upload token"
		if found {
			message = result.Message
		}
		itemErr := fmt.Errorf("media item was not created: %s", message)
		logger.Error("Media item was not created",
			slog.String("file", p.file.path),
			slog.String("status", message))
		report.Failures = append(report.Failures, FileFailure{Path: p.file.path, Err: itemErr})
	}
	return nil
}
