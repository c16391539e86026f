// Package imagekit implementa media.Uploader contra ImageKit.io.
package imagekit

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/platform/httpclient"
	"cattery-storefront/internal/ports/media"

	"github.com/google/uuid"
)

const (
	DefaultUploadURL = "https://upload.imagekit.io/api/v1/files/upload"

	// vida de la autorización firmada para el browser
	authTTL = 30 * time.Minute
)

type Config struct {
	PublicKey     string
	PrivateKey    string
	UploadURL     string
	DefaultFolder string
}

type Client struct {
	cfg  Config
	http *httpclient.Client
	now  func() time.Time
}

// New no valida las llaves: sin llaves cada operación devuelve ErrNotConfigured.
func New(cfg Config, hc *httpclient.Client) *Client {
	if strings.TrimSpace(cfg.UploadURL) == "" {
		cfg.UploadURL = DefaultUploadURL
	}
	if hc == nil {
		hc = httpclient.New(30 * time.Second)
	}
	return &Client{cfg: cfg, http: hc, now: time.Now}
}

var _ media.Uploader = (*Client)(nil)

func (c *Client) configured() bool {
	return strings.TrimSpace(c.cfg.PublicKey) != "" && strings.TrimSpace(c.cfg.PrivateKey) != ""
}

// AuthParams: signature = hex(HMAC-SHA1(privateKey, token+expire)).
func (c *Client) AuthParams(_ context.Context) (media.UploadAuth, error) {
	if !c.configured() {
		return media.UploadAuth{}, fmt.Errorf("imagekit: %w", errs.ErrNotConfigured)
	}
	token := uuid.NewString()
	expire := c.now().Add(authTTL).Unix()
	return media.UploadAuth{
		Token:     token,
		Expire:    expire,
		Signature: sign(c.cfg.PrivateKey, token, expire),
		PublicKey: c.cfg.PublicKey,
	}, nil
}

func sign(privateKey, token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

type uploadResponse struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	FilePath string `json:"filePath"`
}

// Upload sube del lado del servidor con basic auth (private key, sin password).
func (c *Client) Upload(ctx context.Context, f media.File, opts media.UploadOptions) (media.Uploaded, error) {
	if !c.configured() {
		return media.Uploaded{}, fmt.Errorf("imagekit: %w", errs.ErrNotConfigured)
	}
	if f.Content == nil {
		return media.Uploaded{}, &errs.UploadError{Err: fmt.Errorf("empty file")}
	}

	name := strings.TrimSpace(opts.FileName)
	if name == "" {
		name = strings.TrimSpace(f.Name)
	}
	if name == "" {
		name = uuid.NewString()
	}

	fields := map[string]string{"fileName": name}
	folder := opts.Folder
	if folder == "" {
		folder = c.cfg.DefaultFolder
	}
	if folder != "" {
		fields["folder"] = folder
	}
	if len(opts.Tags) > 0 {
		fields["tags"] = strings.Join(opts.Tags, ",")
	}
	if opts.UseUniqueFileName != nil {
		fields["useUniqueFileName"] = strconv.FormatBool(*opts.UseUniqueFileName)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.cfg.PrivateKey + ":"))
	headers := map[string]string{"Authorization": "Basic " + auth}

	var out uploadResponse
	err := c.http.DoMultipart(ctx, c.cfg.UploadURL, headers, fields,
		[]httpclient.FilePart{{Field: "file", FileName: name, Content: f.Content}}, &out)
	if err != nil {
		return media.Uploaded{}, &errs.UploadError{Err: err}
	}
	if out.URL == "" {
		return media.Uploaded{}, &errs.UploadError{Err: fmt.Errorf("response without url")}
	}
	return media.Uploaded{FileID: out.FileID, URL: out.URL}, nil
}
