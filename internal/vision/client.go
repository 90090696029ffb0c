package vision

import "context"

// Image is an uploaded coin photograph. It lives only for the duration of
// one request: decoded at ingress, encoded into the outbound call, then
// discarded.
type Image struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Client is the outbound boundary to a hosted multimodal model. Given image
// bytes it returns the model's free-form text completion; everything after
// that is local salvage.
type Client interface {
	// Complete sends one vision request and returns the first completion's
	// text. The context carries the caller's deadline; no retries are made.
	Complete(ctx context.Context, img Image) (string, error)

	// Configured reports whether the provider credentials are present.
	Configured() bool

	// Name identifies the provider.
	Name() string

	// Model identifies the deployment or model the provider calls.
	Model() string

	// DebugInfo exposes credential presence and lengths, never values.
	DebugInfo() map[string]interface{}
}
