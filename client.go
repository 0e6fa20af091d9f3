package reve

import (
	"context"
	"net/http"
)

// API endpoint paths.
const (
	pathCreate = "/v1/image/create"
	pathEdit   = "/v1/image/edit"
	pathRemix  = "/v1/image/remix"
)

// Client is the Reve API client.
//
// A Client is safe for concurrent use by multiple goroutines.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new Reve client.
//
// The configuration is resolved from, in increasing precedence: library
// defaults, the REVE_API_KEY environment variable, the process-wide
// configuration installed with [Configure], and the given options.
// NewClient fails with [*ConfigurationError] if no API key resolves;
// this is the only validation performed at construction and involves no
// network activity.
func NewClient(opts ...Option) (*Client, error) {
	cfg, ok := DefaultConfig()
	if !ok {
		cfg = NewConfig()
	}

	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if !c.cfg.Valid() {
		return nil, &ConfigurationError{
			Message: "API key is required: pass WithAPIKey, call Configure, or set " + EnvAPIKey,
		}
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient(c.cfg)
	}
	return c, nil
}

// Config returns a copy of the client's resolved configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Create generates an image from a text prompt.
func (c *Client) Create(ctx context.Context, req *CreateRequest) (*ImageResponse, error) {
	if req == nil {
		req = &CreateRequest{}
	}
	if err := validatePrompt("Prompt", req.Prompt); err != nil {
		return nil, err
	}
	if err := validateAspectRatio(req.AspectRatio); err != nil {
		return nil, err
	}

	body := map[string]any{"prompt": req.Prompt}
	addOptionalFields(body, req.AspectRatio, req.Version)

	resp, err := c.post(ctx, pathCreate, body)
	if err != nil {
		return nil, err
	}
	return &ImageResponse{Response: *resp}, nil
}

// Edit modifies a reference image according to an edit instruction.
func (c *Client) Edit(ctx context.Context, req *EditRequest) (*ImageResponse, error) {
	if req == nil {
		req = &EditRequest{}
	}
	if err := validatePrompt("Edit instruction", req.Instruction); err != nil {
		return nil, err
	}
	if err := validateReferenceImage(req.ReferenceImage); err != nil {
		return nil, err
	}
	if err := validateAspectRatio(req.AspectRatio); err != nil {
		return nil, err
	}

	body := map[string]any{
		"edit_instruction": req.Instruction,
		"reference_image":  req.ReferenceImage,
	}
	addOptionalFields(body, req.AspectRatio, req.Version)

	resp, err := c.post(ctx, pathEdit, body)
	if err != nil {
		return nil, err
	}
	return &ImageResponse{Response: *resp}, nil
}

// Remix generates an image from a prompt guided by up to
// MaxReferenceImages reference images. The prompt may address the
// images positionally with <img>N</img> tokens, which are passed to the
// API verbatim.
func (c *Client) Remix(ctx context.Context, req *RemixRequest) (*ImageResponse, error) {
	if req == nil {
		req = &RemixRequest{}
	}
	if err := validatePrompt("Prompt", req.Prompt); err != nil {
		return nil, err
	}
	if err := validateReferenceImages(req.ReferenceImages); err != nil {
		return nil, err
	}
	if err := validateAspectRatio(req.AspectRatio); err != nil {
		return nil, err
	}

	body := map[string]any{
		"prompt":           req.Prompt,
		"reference_images": req.ReferenceImages,
	}
	addOptionalFields(body, req.AspectRatio, req.Version)

	resp, err := c.post(ctx, pathRemix, body)
	if err != nil {
		return nil, err
	}
	return &ImageResponse{Response: *resp}, nil
}

// addOptionalFields includes aspect_ratio and version only when set, so
// the server applies its own defaults otherwise.
func addOptionalFields(body map[string]any, aspectRatio, version string) {
	if aspectRatio != "" {
		body["aspect_ratio"] = aspectRatio
	}
	if version != "" {
		body["version"] = version
	}
}
