package cryptoctx

import (
	"errors"

	"go.uber.org/zap"

	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
)

const (
	opOpen  = "open_context"
	opClose = "close_context"
)

// Manager hands out contexts from a single engine.
type Manager struct {
	engine native.Engine
	log    *zap.Logger
}

// NewManager returns a manager over engine. A nil logger is replaced by a
// no-op logger.
func NewManager(engine native.Engine, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{engine: engine, log: log.Named("cryptoctx")}
}

// Context is an open engine context.
type Context struct {
	m      *Manager
	op     string
	handle native.Handle
	closed bool
}

// Open requests a new context for op. op only labels diagnostics.
func (m *Manager) Open(op string) (*Context, error) {
	var h native.Handle
	if err := status.Context(opOpen, m.engine.OpenContext(&h)); err != nil {
		m.log.Debug("open context failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return &Context{m: m, op: op, handle: h}, nil
}

// Handle returns the engine handle.
func (c *Context) Handle() native.Handle { return c.handle }

// Close releases the context. Only the first call reaches the engine; later
// calls return nil.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return status.Context(opClose, c.m.engine.CloseContext(c.handle))
}

// Do runs fn inside a fresh context and always closes it.
func (m *Manager) Do(op string, fn func(h native.Handle) error) (err error) {
	ctx, err := m.Open(op)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := ctx.Close()
		switch {
		case closeErr == nil:
		case err == nil:
			err = closeErr
		default:
			m.log.Error("close context failed after operation failure",
				zap.String("op", op),
				zap.NamedError("operation", err),
				zap.NamedError("close", closeErr),
			)
			err = errors.Join(err, closeErr)
		}
	}()
	return fn(ctx.handle)
}
