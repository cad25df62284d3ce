//go:generate go run github.com/golang/mock/mockgen -source=${GOFILE} -destination=zz_generated_local_mocks_test.go -package=commands GPhotosClient,AppAlbumsService,AppMediaItemsService,AppUploader

package commands

import (
	"context"

	"github.com/ccfrost/albumup/commands/googlephotos"
)

// GPhotosClient defines the interface for Google Photos client operations
// needed by the albumup commands.
type GPhotosClient interface {
	Albums() AppAlbumsService
	MediaItems() AppMediaItemsService
	Uploader() AppUploader
}

// AppAlbumsService defines the interface for album-related operations we use.
type AppAlbumsService interface {
	List(ctx context.Context) ([]googlephotos.Album, error)
	Create(ctx context.Context, title string) (*googlephotos.Album, error)
}

// AppMediaItemsService defines the interface for media item-related
// operations we use.
type AppMediaItemsService interface {
	BatchCreate(ctx context.Context, albumID string, items []googlephotos.NewMediaItem) ([]googlephotos.BatchCreateResult, error)
}

// AppUploader defines the interface for the raw byte upload endpoint.
type AppUploader interface {
	UploadFile(ctx context.Context, path string) (string, error)
}

// liveGPhotosClient adapts googlephotos.Client to the service interfaces.
type liveGPhotosClient struct {
	client *googlephotos.Client
}

// NewGPhotosClient wraps a googlephotos.Client as a GPhotosClient.
func NewGPhotosClient(client *googlephotos.Client) GPhotosClient {
	return &liveGPhotosClient{client: client}
}

func (g *liveGPhotosClient) Albums() AppAlbumsService {
	return g.client.Albums()
}

func (g *liveGPhotosClient) MediaItems() AppMediaItemsService {
	return g.client.MediaItems()
}

func (g *liveGPhotosClient) Uploader() AppUploader {
	return g.client.Uploader()
}
