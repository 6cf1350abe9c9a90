package dataset

// Observer is told after every mutation of a DataSet it is attached to.
// Implementations must be comparable (usually pointers) so Detach can find them;
// Attach panics with ErrUncomparableObserver otherwise.
type Observer interface {
	OnChanged()
}

// DataSet is an observable set of unique points kept sorted by X. It is not safe
// for concurrent use, and mutating it from an Observer's OnChanged panics with
// ErrReentrantMutation.
type DataSet interface {
	// GetID is a process-unique snowflake ID. It is the "id" field of the
	// DataSet's log lines and of store write failures, for log correlation.
	GetID() uint64

	Attach(observer Observer)
	Detach(observer Observer)

	Add(x, y *float64) bool
	Remove(x, y *float64)
	Contains(x, y *float64) bool

	GetTitle() string
	SetTitle(title string)
	GetXLabel() string
	SetXLabel(label string)
	GetYLabel() string
	SetYLabel(label string)

	GetBounds() Bounds
	GetXMin() float64
	SetXMin(v float64) error
	GetXMax() float64
	SetXMax(v float64) error
	GetYMin() float64
	SetYMin(v float64) error
	GetYMax() float64
	SetYMax(v float64) error

	Size() int
	GetDataAsArray() [][2]float64
	GetPoints() []Point

	Load(name string) error
	Save(name string) error

	Equals(other DataSet) bool
	String() string
}

// Store moves the .jjf text of a DataSet to and from a named place.
type Store interface {
	Read(name string) (DataSet, error)
	Write(ds DataSet, name string) error
}
