// Package mediastore talks to the external object storage that hosts talent
// images and video reels. Uploads return a durable URL plus an opaque deletion
// handle; the handle is all that is needed to remove the asset later.
package mediastore

import "context"

type Kind string

const (
	KindImage = Kind("image")
	KindVideo = Kind("video")
)

type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, publicID string, kind Kind) error
}

// S is the process-wide store, wired up during boot.
var S Store
