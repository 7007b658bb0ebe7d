package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type SignedConfig struct {
	// BaseURL of the direct upload API, e.g. https://api.cloudinary.com/v1_1
	BaseURL   string
	Cloud     string
	APIKey    string
	APISecret string
}

func (c SignedConfig) Enabled() bool {
	return c.BaseURL != "" && c.Cloud != "" && c.APIKey != "" && c.APISecret != ""
}

// SignedClient posts assets to a Cloudinary compatible signed upload endpoint.
type SignedClient struct {
	cfg  SignedConfig
	http httpDoer
	now  func() time.Time
}

func NewSignedClient(cfg SignedConfig, doer httpDoer) *SignedClient {
	log.Println("initialising signed upload client...")
	if doer == nil {
		doer = http.DefaultClient
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &SignedClient{cfg: cfg, http: doer, now: time.Now}
}

// Sign returns the SHA-1 hex digest of the key-sorted k=v pairs joined by '&',
// followed by the secret. Empty values are left out.
func Sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

type signedResponse struct {
	SecureURL string   `json:"secure_url"`
	Duration  *float64 `json:"duration"`
	Format    string   `json:"format"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *SignedClient) Upload(ctx context.Context, data []byte, opts port.UploadOptions) (model.RemoteAsset, error) {
	kind := opts.ResourceKind
	if kind == "" {
		kind = model.ResourceAuto
	}

	params := map[string]string{
		"folder":    opts.Folder,
		"public_id": opts.PublicID,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	if opts.Eager != "" {
		params["eager"] = opts.Eager
		params["eager_async"] = "true"
	}
	signature := Sign(params, c.cfg.APISecret)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range params {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return model.RemoteAsset{}, err
		}
	}
	_ = w.WriteField("api_key", c.cfg.APIKey)
	_ = w.WriteField("signature", signature)
	fw, err := w.CreateFormFile("file", opts.PublicID)
	if err != nil {
		return model.RemoteAsset{}, err
	}
	if _, err := fw.Write(data); err != nil {
		return model.RemoteAsset{}, err
	}
	if err := w.Close(); err != nil {
		return model.RemoteAsset{}, err
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", c.cfg.BaseURL, c.cfg.Cloud, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return model.RemoteAsset{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	log.Printf("posting %q to signed upload API...", opts.PublicID)
	resp, err := c.http.Do(req)
	if err != nil {
		return model.RemoteAsset{}, mapUploadErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.RemoteAsset{}, mapUploadErr(err)
	}
	if resp.StatusCode == http.StatusGatewayTimeout {
		return model.RemoteAsset{}, mapUploadErr(&statusError{Status: resp.StatusCode, Body: string(raw)})
	}

	var out signedResponse
	if err := json.Unmarshal(raw, &out); err != nil && resp.StatusCode < 300 {
		return model.RemoteAsset{}, mapUploadErr(fmt.Errorf("decode upload response: %w", err))
	}
	if resp.StatusCode >= 300 {
		msg := string(raw)
		if out.Error != nil {
			msg = out.Error.Message
		}
		return model.RemoteAsset{}, mapUploadErr(&statusError{Status: resp.StatusCode, Body: msg})
	}
	if out.SecureURL == "" {
		return model.RemoteAsset{}, mapUploadErr(errors.New("upload response carries no secure_url"))
	}
	return model.RemoteAsset{URL: out.SecureURL, Duration: out.Duration, Format: out.Format}, nil
}
