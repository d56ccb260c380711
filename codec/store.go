package codec

import (
	"errors"
	"fmt"

	"github.com/woozymasta/lz4block/host"
	"github.com/woozymasta/lz4block/internal/options"
)

type storeConfig struct {
	host *host.Host
}

// StoreOption configures Store.
type StoreOption = options.Option[*storeConfig]

// WithHost reports storage decisions through the host debug hook.
func WithHost(h *host.Host) StoreOption {
	return options.NoError(func(cfg *storeConfig) {
		cfg.host = h
	})
}

// Store compresses src with c and returns the method to record with the payload.
// When c cannot shrink src the payload is a copy of src and the method is MethodNone.
// Any other codec error is returned as is.
func Store(c Codec, src []byte, opts ...StoreOption) (Method, []byte, error) {
	cfg := &storeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return MethodNone, nil, err
	}

	if c == nil || c.Method() == MethodNone {
		return MethodNone, append([]byte(nil), src...), nil
	}

	payload, err := c.Compress(src)
	if errors.Is(err, ErrIncompressible) {
		cfg.host.Debugf("codec: %s could not shrink %d bytes, storing uncompressed", c.Method(), len(src))
		return MethodNone, append([]byte(nil), src...), nil
	}
	if err != nil {
		return MethodNone, nil, fmt.Errorf("%s compress: %w", c.Method(), err)
	}

	cfg.host.Debugf("codec: %s stored %d bytes as %d", c.Method(), len(src), len(payload))
	return c.Method(), payload, nil
}

// Load reverses Store: it decodes payload with the codec for method into exactly size
// bytes. Every failure wraps ErrRejected and the payload must be discarded.
func Load(method Method, payload []byte, size int) ([]byte, error) {
	c, err := New(method)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRejected, err)
	}

	out, err := c.Decompress(payload, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRejected, method, err)
	}

	return out, nil
}
