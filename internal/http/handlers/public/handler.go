package public

import "github.com/mebel-next/internal/provider"

// Handler serves the storefront API.
// Every route is session scoped; there are no authenticated users.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
