package hexcore

import (
	"context"
	"reflect"
	"sync"
)

var (
	plans   = make(map[reflect.Type]*typePlan)
	plansMu sync.RWMutex
)

// planFor returns the cached render plan for T or builds a new one.
func planFor[T any](ctx context.Context) (*typePlan, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	plansMu.RLock()
	if cached, ok := plans[typ]; ok {
		plansMu.RUnlock()
		return cached, nil
	}
	plansMu.RUnlock()

	// Slow path: build and cache with write-lock
	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check pattern
	if cached, ok := plans[typ]; ok {
		return cached, nil
	}

	plan, err := buildPlan[T]()
	if err != nil {
		return nil, err
	}

	plans[typ] = plan
	emitPlanBuilt(ctx, plan.typeName, len(plan.fields))
	return plan, nil
}

// Reset clears the render plan cache.
// This is primarily useful for test isolation.
func Reset() {
	plansMu.Lock()
	defer plansMu.Unlock()
	plans = make(map[reflect.Type]*typePlan)
}
