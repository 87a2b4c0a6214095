package jobcard

import "context"

// NumberAllocator issues ticket numbers of the form TK-XXXXXXXX where the
// suffix is eight uppercase base-36 characters. Implementations check the
// candidate against existing rows and regenerate on collision. The
// check-then-use window is not serialized; a collision there would merge
// two visits under one number, which is tolerated because rows group by
// value rather than by a ticket record.
type NumberAllocator interface {
	Allocate(ctx context.Context) (string, error)
}
