package container

import "errors"

// ErrParameterNotFound is returned when a parameter is read or referenced but never set.
var ErrParameterNotFound = errors.New("parameter not found")

// ErrCircularParameter is returned when parameter placeholders reference each other in a loop.
var ErrCircularParameter = errors.New("circular parameter reference")

// ErrInvalidParameter is returned when a non-scalar parameter is embedded inside a string.
var ErrInvalidParameter = errors.New("parameter cannot be embedded in a string")

// ErrServiceNotFound is returned when an alias does not end at a defined service.
var ErrServiceNotFound = errors.New("service not found")

// ErrCircularAlias is returned when an alias chain loops back on itself.
var ErrCircularAlias = errors.New("circular alias")

// ErrEmptyID is returned when a service, alias, parameter, or class identifier is empty.
var ErrEmptyID = errors.New("identifier must not be empty")

// ErrInvalidClass is returned when a definition class does not resolve to a string.
var ErrInvalidClass = errors.New("class must resolve to a string")

// ErrFactoryNotFound is returned when no factory is registered for an overridden class.
var ErrFactoryNotFound = errors.New("factory not found")

// ErrDuplicateFactory is returned when a class is registered twice.
var ErrDuplicateFactory = errors.New("factory already registered")

// ErrNilFactory is returned when a nil factory is registered.
var ErrNilFactory = errors.New("factory must not be nil")

// ErrTypeMismatch is returned when a factory result does not have the requested type.
var ErrTypeMismatch = errors.New("unexpected instance type")
