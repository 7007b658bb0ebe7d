package project

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/fhuszti/portfolio-ms-go/internal/workerpool"
	"golang.org/x/sync/errgroup"
)

// Pipeline turns accepted upload candidates into remote URLs.
type Pipeline struct {
	cfg        Config
	compressor port.ImageCompressor
	transcoder port.VideoTranscoder
	host       port.MediaHost
	now        func() time.Time
	suffix     func() string
}

func NewPipeline(cfg Config, compressor port.ImageCompressor, transcoder port.VideoTranscoder, host port.MediaHost) *Pipeline {
	return &Pipeline{
		cfg:        cfg.withDefaults(),
		compressor: compressor,
		transcoder: transcoder,
		host:       host,
		now:        time.Now,
		suffix:     randomSuffix,
	}
}

func randomSuffix() string {
	return uuid.NewUUID().String()
}

// publicID names one upload. The suffix keeps concurrent requests landing in the
// same millisecond from writing the same object.
func (p *Pipeline) publicID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, p.now().UnixMilli(), p.suffix())
}

func (p *Pipeline) options(publicID string, kind model.ResourceKind, contentType string) port.UploadOptions {
	return port.UploadOptions{
		Folder:       p.cfg.Folder,
		PublicID:     publicID,
		ResourceKind: kind,
		ContentType:  contentType,
	}
}

func (p *Pipeline) uploadCover(ctx context.Context, c model.UploadCandidate) (string, error) {
	asset := p.compressor.Compress(c.Data, c.ContentType, true)
	opts := p.options(p.publicID("cover"), model.ResourceImage, asset.ContentType)

	remote, err := upload(ctx, p.host, StrategyStream, asset.Data, opts)
	if err != nil {
		return "", fmt.Errorf("cover: %w", err)
	}
	logger.Debugf(ctx, "cover uploaded to %s", remote.URL)
	return remote.URL, nil
}

// uploadGallery compresses every image, then uploads them all. The returned
// URLs follow the order of files regardless of completion order.
func (p *Pipeline) uploadGallery(ctx context.Context, files []model.UploadCandidate) (model.Images, error) {
	assets, err := workerpool.Map(ctx, p.cfg.Concurrency, files, func(ctx context.Context, _ int, f model.UploadCandidate) (model.ProcessedAsset, error) {
		return p.compressor.Compress(f.Data, f.ContentType, false), nil
	})
	if err != nil {
		return nil, err
	}

	base := p.publicID("image")
	urls, err := workerpool.Map(ctx, p.cfg.Concurrency, assets, func(ctx context.Context, i int, a model.ProcessedAsset) (string, error) {
		opts := p.options(fmt.Sprintf("%s-%d", base, i), model.ResourceImage, a.ContentType)
		remote, err := upload(ctx, p.host, StrategyStream, a.Data, opts)
		if err != nil {
			return "", err
		}
		return remote.URL, nil
	})
	if err != nil {
		return nil, fmt.Errorf("gallery: %w", err)
	}
	return urls, nil
}

func (p *Pipeline) uploadMedia(ctx context.Context, c model.UploadCandidate) (*model.Media, error) {
	publicID := p.publicID("media")

	if !c.IsVideo() {
		asset := p.compressor.Compress(c.Data, c.ContentType, false)
		remote, err := upload(ctx, p.host, StrategyStream, asset.Data, p.options(publicID, model.ResourceImage, asset.ContentType))
		if err != nil {
			return nil, fmt.Errorf("media: %w", err)
		}
		return &model.Media{URL: remote.URL, Type: model.MediaTypeImage, Format: remote.Format}, nil
	}

	data, contentType := c.Data, c.ContentType
	if int64(len(data)) > p.cfg.VideoCompressThreshold {
		logger.Infof(ctx, "transcoding %d bytes video before upload", len(data))
		out, err := p.transcoder.Transcode(ctx, data)
		if err != nil {
			return nil, err
		}
		logger.Infof(ctx, "video transcoded from %d to %d bytes", len(data), len(out))
		data, contentType = out, "video/mp4"
	}
	size := int64(len(data))
	if size > p.cfg.VideoMaxOutput {
		return nil, &TooLargeError{Size: size, Max: p.cfg.VideoMaxOutput}
	}

	strategy := SelectStrategy(true, size, p.cfg.ChunkSize, p.cfg.SignedEnabled)
	opts := p.options(publicID, model.ResourceVideo, contentType)
	opts.Eager = p.cfg.Eager
	logger.Debugf(ctx, "uploading %d bytes video with %s strategy", size, strategy)

	remote, err := upload(ctx, p.host, strategy, data, opts)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}
	return &model.Media{
		URL:      remote.URL,
		Type:     model.MediaTypeVideo,
		Duration: remote.Duration,
		Format:   remote.Format,
	}, nil
}

// uploadGalleryAndMedia runs the gallery and media groups concurrently. A group
// absent from files yields a nil result.
func (p *Pipeline) uploadGalleryAndMedia(ctx context.Context, files model.FileGroups) (model.Images, *model.Media, error) {
	var (
		images model.Images
		media  *model.Media
		g      errgroup.Group
	)
	if gallery, ok := files.Get(model.RoleGallery); ok {
		g.Go(func() error {
			urls, err := p.uploadGallery(ctx, gallery.Files)
			if err != nil {
				return err
			}
			images = urls
			return nil
		})
	}
	if m, ok := files.Get(model.RoleMedia); ok {
		g.Go(func() error {
			out, err := p.uploadMedia(ctx, m.Files[0])
			if err != nil {
				return err
			}
			media = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return images, media, nil
}
