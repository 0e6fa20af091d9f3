package reve

// CreateRequest describes a text-to-image generation.
type CreateRequest struct {
	// Prompt describes the image to generate. Required; at most
	// MaxPromptLength characters.
	Prompt string

	// AspectRatio selects the output proportions. Empty means the
	// server default. Must be one of [AspectRatios] otherwise.
	AspectRatio string

	// Version pins a specific model version. Empty means latest.
	Version string
}

// EditRequest describes an instruction-guided edit of an existing
// image.
type EditRequest struct {
	// Instruction describes the edit to perform. Required; at most
	// MaxPromptLength characters.
	Instruction string

	// ReferenceImage is the base64-encoded image to edit. Required.
	ReferenceImage string

	// AspectRatio selects the output proportions. Empty means the
	// server default.
	AspectRatio string

	// Version pins a specific model version. Empty means latest.
	Version string
}

// RemixRequest describes a generation guided by reference images.
//
// The prompt may address individual reference images with positional
// <img>N</img> tokens. Those tokens are passed through to the API
// verbatim; the SDK does not interpret them.
type RemixRequest struct {
	// Prompt describes the image to generate. Required; at most
	// MaxPromptLength characters.
	Prompt string

	// ReferenceImages are base64-encoded images, between 1 and
	// MaxReferenceImages of them. Required.
	ReferenceImages []string

	// AspectRatio selects the output proportions. Empty means the
	// server default.
	AspectRatio string

	// Version pins a specific model version. Empty means latest.
	Version string
}
