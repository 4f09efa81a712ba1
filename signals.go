package hexcore

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for armor and render events.
var (
	SignalArmorCreated      = capitan.NewSignal("hexcore.armor.created", "Armor codec instantiated")
	SignalMarshalComplete   = capitan.NewSignal("hexcore.armor.marshal.complete", "Armored marshal finished")
	SignalUnmarshalComplete = capitan.NewSignal("hexcore.armor.unmarshal.complete", "Armored unmarshal finished")
	SignalPlanBuilt         = capitan.NewSignal("hexcore.render.plan.built", "Render plan built for type")
	SignalRenderComplete    = capitan.NewSignal("hexcore.render.complete", "Render operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyCase        = capitan.NewStringKey("case")
	KeySize        = capitan.NewIntKey("size")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitArmorCreated emits an event when an armor codec is created.
func emitArmorCreated(ctx context.Context, contentType string, c Case) {
	capitan.Emit(ctx, SignalArmorCreated,
		KeyContentType.Field(contentType),
		KeyCase.Field(string(c)),
	)
}

// emitMarshalComplete emits an event when an armored marshal finishes.
func emitMarshalComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, fields...)
	}
}

// emitUnmarshalComplete emits an event when an armored unmarshal finishes.
func emitUnmarshalComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUnmarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnmarshalComplete, fields...)
	}
}

// emitPlanBuilt emits an event when a render plan is built and cached.
func emitPlanBuilt(ctx context.Context, typeName string, count int) {
	capitan.Emit(ctx, SignalPlanBuilt,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(count),
	)
}

// emitRenderComplete emits an event when a render finishes.
func emitRenderComplete(ctx context.Context, typeName string, count int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(count),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRenderComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRenderComplete, fields...)
	}
}
