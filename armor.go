package hexcore

import (
	"context"
	"time"
)

// Armor is a Codec that hex-encodes the output of another Codec.
//
// Use it to carry binary formats (MessagePack, BSON) over text-only channels.
// Armor values are immutable and safe for concurrent use.
type Armor struct {
	inner Codec
	upper bool
	ctx   context.Context
}

// ArmorOption configures an Armor.
type ArmorOption func(*Armor)

// WithUpper makes the armor emit uppercase hex digits.
// Unmarshal accepts either case regardless of this option.
func WithUpper() ArmorOption {
	return func(a *Armor) {
		a.upper = true
	}
}

// WithContext sets the context used for signals emitted by NewArmor, Marshal
// and Unmarshal. MarshalContext and UnmarshalContext override it per call.
func WithContext(ctx context.Context) ArmorOption {
	return func(a *Armor) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// NewArmor wraps inner so that its output is hex text.
func NewArmor(inner Codec, opts ...ArmorOption) *Armor {
	a := &Armor{inner: inner, ctx: context.Background()}
	for _, opt := range opts {
		opt(a)
	}
	emitArmorCreated(a.ctx, a.ContentType(), a.digitCase())
	return a
}

func (a *Armor) digitCase() Case {
	if a.upper {
		return CaseUpper
	}
	return CaseLower
}

// ContentType returns the inner content type with a "+hex" suffix.
func (a *Armor) ContentType() string {
	return a.inner.ContentType() + "+hex"
}

// Marshal encodes v with the inner codec and returns the result as hex text.
func (a *Armor) Marshal(v any) ([]byte, error) {
	return a.MarshalContext(a.ctx, v)
}

// MarshalContext is Marshal with a context for emitted signals.
func (a *Armor) MarshalContext(ctx context.Context, v any) (out []byte, retErr error) {
	start := time.Now()
	defer func() {
		emitMarshalComplete(ctx, a.ContentType(), len(out), time.Since(start), retErr)
	}()

	raw, err := a.inner.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	out = make([]byte, EncodedLen(len(raw)))
	if a.upper {
		err = EncodeUpper(out, raw)
	} else {
		err = Encode(out, raw)
	}
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return out, nil
}

// Unmarshal decodes hex text and passes the bytes to the inner codec.
// Malformed hex fails with ErrUnmarshal together with ErrInvalidSize or
// ErrNonHexByte.
func (a *Armor) Unmarshal(data []byte, v any) error {
	return a.UnmarshalContext(a.ctx, data, v)
}

// UnmarshalContext is Unmarshal with a context for emitted signals.
func (a *Armor) UnmarshalContext(ctx context.Context, data []byte, v any) (retErr error) {
	start := time.Now()
	defer func() {
		emitUnmarshalComplete(ctx, a.ContentType(), len(data), time.Since(start), retErr)
	}()

	raw, err := AppendDecode(nil, data)
	if err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	if err := a.inner.Unmarshal(raw, v); err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	return nil
}
