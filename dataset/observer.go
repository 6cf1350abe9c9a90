package dataset

import "reflect"

type observerRegistry struct {
	observers []Observer
	notifying bool
}

// attach panics with ErrUncomparableObserver for observers Detach could not
// match, such as func or slice backed types.
func (r *observerRegistry) attach(observer Observer) {
	if observer == nil {
		return
	}

	if !reflect.TypeOf(observer).Comparable() {
		panic(ErrUncomparableObserver)
	}

	r.observers = append(r.observers, observer)
}

func (r *observerRegistry) detach(observer Observer) {
	for idx, o := range r.observers {
		if o != observer {
			continue
		}

		observers := make([]Observer, 0, len(r.observers)-1)
		observers = append(observers, r.observers[:idx]...)
		r.observers = append(observers, r.observers[idx+1:]...)

		return
	}
}

// notify calls every observer in attach order. Attach/Detach done by a callback
// apply from the next notify on.
func (r *observerRegistry) notify() {
	observers := r.observers

	r.notifying = true
	defer func() {
		r.notifying = false
	}()

	for _, o := range observers {
		o.OnChanged()
	}
}

func (r *observerRegistry) mustNotNotifying() {
	if r.notifying {
		panic(ErrReentrantMutation)
	}
}
