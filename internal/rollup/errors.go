package rollup

import "errors"

var (
	// errNotAnObject marks a _rollup entry whose value is not a job object.
	errNotAnObject = errors.New("rollup job entry is not an object")
	// errInvalidJob marks a decoded entry violating job invariants.
	errInvalidJob = errors.New("rollup job entry violates config invariants")

	// ErrNilSnapshot is returned when the caller hands the service no
	// snapshot at all. That is a collaborator bug, not a runtime condition;
	// an empty snapshot is the value to pass when the cluster has no indices.
	ErrNilSnapshot = errors.New("cluster metadata snapshot is nil")
)
