// Package oysterzap encodes oyster containers as structured zap fields.
package oysterzap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/oyster/pkg/oyster"
)

// Optional returns a field such as {"variant": "present", "value": 42}.
func Optional[V any](key string, o oyster.Optional[V]) zap.Field {
	return zap.Object(key, optionalMarshaler[V]{o: o})
}

// Outcome returns a field such as {"variant": "failure", "error": "not found"}.
func Outcome[T, E any](key string, r oyster.Outcome[T, E]) zap.Field {
	return zap.Object(key, outcomeMarshaler[T, E]{r: r})
}

// Tee logs r at debug level on success and at warn level on failure, then
// returns it unchanged.
func Tee[T, E any](logger *zap.Logger, msg string, r oyster.Outcome[T, E]) oyster.Outcome[T, E] {
	if r.IsSuccess() {
		logger.Debug(msg, Outcome("outcome", r))
	} else {
		logger.Warn(msg, Outcome("outcome", r))
	}
	return r
}

type optionalMarshaler[V any] struct {
	o oyster.Optional[V]
}

func (m optionalMarshaler[V]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	v, ok := m.o.Get()
	if !ok {
		enc.AddString("variant", "absent")
		return nil
	}
	enc.AddString("variant", "present")
	return addPayload(enc, "value", v)
}

type outcomeMarshaler[T, E any] struct {
	r oyster.Outcome[T, E]
}

func (m outcomeMarshaler[T, E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	v, err, ok := m.r.Get()
	if ok {
		enc.AddString("variant", "success")
		return addPayload(enc, "value", v)
	}
	enc.AddString("variant", "failure")
	return addPayload(enc, "error", err)
}

func addPayload(enc zapcore.ObjectEncoder, key string, payload any) error {
	switch p := payload.(type) {
	case string:
		enc.AddString(key, p)
	case error:
		if oyster.IsNil(p) {
			enc.AddString(key, "<nil>")
			return nil
		}
		enc.AddString(key, p.Error())
	default:
		return enc.AddReflected(key, p)
	}
	return nil
}
