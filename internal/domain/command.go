package domain

// Result is the eventual outcome of an executed command.
type Result struct {
	Value any
	Err   error
}

// Pending delivers exactly one Result and is then closed.
type Pending <-chan Result

// Resolved returns a Pending that already holds value.
func Resolved(value any) Pending {
	ch := make(chan Result, 1)
	ch <- Result{Value: value}
	close(ch)
	return ch
}

// Rejected returns a Pending that already holds err.
func Rejected(err error) Pending {
	ch := make(chan Result, 1)
	ch <- Result{Err: err}
	close(ch)
	return ch
}

// ExecuteFunc runs a command. It must not block; long work resolves the Pending later.
type ExecuteFunc func() Pending

// CommandOptions describes a command being registered.
type CommandOptions struct {
	Label   string
	Caption string
	Execute ExecuteFunc
}

// Disposable undoes a registration.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to Disposable.
type DisposeFunc func()

// Dispose calls f.
func (f DisposeFunc) Dispose() {
	f()
}
