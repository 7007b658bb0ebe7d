package optimiser

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"github.com/disintegration/gift"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type profile struct {
	maxSide int
	quality int
}

var (
	coverProfile   = profile{maxSide: 1920, quality: 85}
	galleryProfile = profile{maxSide: 1600, quality: 80}
)

type Compressor struct {
	webpEnc WebPEncoder
}

// compile-time check: *Compressor must satisfy port.ImageCompressor
var _ port.ImageCompressor = (*Compressor)(nil)

func NewCompressor(webpEnc WebPEncoder) *Compressor {
	log.Println("initialising image compressor...")
	return &Compressor{webpEnc: webpEnc}
}

// Compress downsizes the image so neither side exceeds the role's maximum and re-encodes it as
// lossy WebP. Behavior:
//   - JPEG, PNG, WebP: resized (never upscaled), then WebP @ 85 (cover) or 80.
//   - SVG and GIF: returned untouched, they are vector or animated.
//   - Any decode or encode failure: the original bytes are returned.
func (c *Compressor) Compress(data []byte, contentType string, isCover bool) model.ProcessedAsset {
	original := model.ProcessedAsset{Data: data, ContentType: contentType, Size: int64(len(data))}

	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
	default:
		return original
	}

	p := galleryProfile
	if isCover {
		p = coverProfile
	}

	out, err := c.encode(data, p)
	if err != nil {
		log.Printf("⚠️  image compression failed, keeping original (%s, %d bytes): %v", contentType, len(data), err)
		return original
	}
	return model.ProcessedAsset{Data: out, ContentType: "image/webp", Size: int64(len(out))}
}

func (c *Compressor) encode(data []byte, p profile) ([]byte, error) {
	img, _, err := c.webpEnc.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("optimiser: failed to decode image: %w", err)
	}

	img = fitInside(img, p.maxSide)

	buf := &bytes.Buffer{}
	if err := c.webpEnc.Encode(img, p.quality, buf); err != nil {
		return nil, fmt.Errorf("optimiser: failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}

// fitInside scales img down into a maxSide square keeping its aspect ratio.
// Images already small enough are returned as is.
func fitInside(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxSide && b.Dy() <= maxSide {
		return img
	}
	g := gift.New(gift.ResizeToFit(maxSide, maxSide, gift.LanczosResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
