package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// InputError reports malformed numeric input for a single entity's tick. The
// failing tick is skipped wholesale; the error never propagates into the
// world model.
type InputError struct {
	Field string
	Value mgl64.Vec3
}

func (e *InputError) Error() string {
	return fmt.Sprintf("sim: non-finite %s %v", e.Field, e.Value)
}
