package hexcore

// Renderable bypasses reflection for Render.
// When a type implements Renderable, Render calls RenderHex instead of
// walking the type's hex struct tags. This suits hot paths and codegen.
type Renderable interface {
	// RenderHex returns the hex text of the receiver's binary fields keyed by
	// field path.
	RenderHex() (map[string]string, error)
}
