// Package model defines the in-memory robot description: a kinematic tree
// of rigid bodies with mass, inertia, joints and simplified visual geometry.
//
// A RobotSpec is built once by the loader, validated field by field, and is
// immutable afterward. The package also defines the error taxonomy shared by
// every export stage; callers can classify failures with errors.As:
//
//	var missing *model.MissingFieldError
//	if errors.As(err, &missing) {
//	    // missing.Entity / missing.Field locate the offending input
//	}
package model
