package dataset

import (
	"slices"
	"sort"
	"strings"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
)

// NewDataSet returns an empty DataSet with empty labels and the configured
// default bounds ([0,10]x[0,10] unless a Config says otherwise).
func NewDataSet(options ...Option) DataSet {
	opts := optionNew(options...)

	impl := newDataSetImpl(opts)
	impl.bounds = opts.cfg.bounds()

	return impl
}

func NewDataSetEx(title, xLabel, yLabel string, bounds Bounds, options ...Option) (DataSet, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	impl := newDataSetImpl(optionNew(options...))
	impl.title = title
	impl.xLabel = xLabel
	impl.yLabel = yLabel
	impl.bounds = bounds

	return impl, nil
}

func newDataSetImpl(opts *Options) *dataSetImpl {
	id := snowflake.ID()

	return &dataSetImpl{
		logger: opts.logger.WithFields(l.StringField(l.ClsKey, "dataSetImpl"), l.UInt64Field("id", id)),
		opts:   opts,
		id:     id,
		store:  opts.store,
	}
}

// dataSetImpl keeps points sorted by X; points sharing an X stay in insertion order.
// It is not safe for concurrent use.
type dataSetImpl struct {
	logger l.Wrapper
	opts   *Options
	id     uint64

	store Store

	title  string
	xLabel string
	yLabel string
	bounds Bounds
	points []Point

	registry observerRegistry
}

func (impl *dataSetImpl) GetID() uint64 {
	return impl.id
}

func (impl *dataSetImpl) Attach(observer Observer) {
	impl.registry.attach(observer)
}

func (impl *dataSetImpl) Detach(observer Observer) {
	impl.registry.detach(observer)
}

// Add inserts (x,y) when both coordinates are present, it is not stored yet and
// it lies inside the bounds. Observers are notified whether or not it was added.
func (impl *dataSetImpl) Add(x, y *float64) (ok bool) {
	impl.registry.mustNotNotifying()

	p := NewPoint(x, y)

	ok = impl.acceptable(p)
	if ok {
		impl.insert(p)
	}

	impl.registry.notify()

	return
}

func (impl *dataSetImpl) Remove(x, y *float64) {
	impl.registry.mustNotNotifying()

	if idx := impl.indexOf(NewPoint(x, y)); idx >= 0 {
		impl.points = slices.Delete(impl.points, idx, idx+1)
	}

	impl.registry.notify()
}

func (impl *dataSetImpl) Contains(x, y *float64) bool {
	return impl.indexOf(NewPoint(x, y)) >= 0
}

func (impl *dataSetImpl) acceptable(p Point) bool {
	if p.X == nil || p.Y == nil {
		return false
	}

	if !impl.bounds.Contains(*p.X, *p.Y) {
		return false
	}

	return impl.indexOf(p) < 0
}

func (impl *dataSetImpl) insert(p Point) {
	idx := sort.Search(len(impl.points), func(i int) bool {
		return impl.points[i].Compare(p) > 0
	})

	impl.points = slices.Insert(impl.points, idx, p)
}

func (impl *dataSetImpl) indexOf(p Point) int {
	return slices.IndexFunc(impl.points, p.Equals)
}

func (impl *dataSetImpl) GetTitle() string {
	return impl.title
}

func (impl *dataSetImpl) SetTitle(title string) {
	impl.registry.mustNotNotifying()

	impl.title = title

	impl.registry.notify()
}

func (impl *dataSetImpl) GetXLabel() string {
	return impl.xLabel
}

func (impl *dataSetImpl) SetXLabel(label string) {
	impl.registry.mustNotNotifying()

	impl.xLabel = label

	impl.registry.notify()
}

func (impl *dataSetImpl) GetYLabel() string {
	return impl.yLabel
}

func (impl *dataSetImpl) SetYLabel(label string) {
	impl.registry.mustNotNotifying()

	impl.yLabel = label

	impl.registry.notify()
}

func (impl *dataSetImpl) GetBounds() Bounds {
	return impl.bounds
}

func (impl *dataSetImpl) GetXMin() float64 {
	return impl.bounds.XMin
}

func (impl *dataSetImpl) SetXMin(v float64) error {
	return impl.setBounds(impl.bounds.withXMin, v)
}

func (impl *dataSetImpl) GetXMax() float64 {
	return impl.bounds.XMax
}

func (impl *dataSetImpl) SetXMax(v float64) error {
	return impl.setBounds(impl.bounds.withXMax, v)
}

func (impl *dataSetImpl) GetYMin() float64 {
	return impl.bounds.YMin
}

func (impl *dataSetImpl) SetYMin(v float64) error {
	return impl.setBounds(impl.bounds.withYMin, v)
}

func (impl *dataSetImpl) GetYMax() float64 {
	return impl.bounds.YMax
}

func (impl *dataSetImpl) SetYMax(v float64) error {
	return impl.setBounds(impl.bounds.withYMax, v)
}

// setBounds leaves the bounds untouched and skips notification when the new
// value would cross the opposite bound. Stored points outside the new bounds
// are kept.
func (impl *dataSetImpl) setBounds(with func(v float64) (Bounds, error), v float64) error {
	impl.registry.mustNotNotifying()

	bounds, err := with(v)
	if err != nil {
		return err
	}

	impl.bounds = bounds

	impl.registry.notify()

	return nil
}

func (impl *dataSetImpl) Size() int {
	return len(impl.points)
}

func (impl *dataSetImpl) GetDataAsArray() [][2]float64 {
	ds := make([][2]float64, 0, len(impl.points))

	for _, p := range impl.points {
		ds = append(ds, [2]float64{*p.X, *p.Y})
	}

	return ds
}

func (impl *dataSetImpl) GetPoints() []Point {
	ps := make([]Point, 0, len(impl.points))

	for _, p := range impl.points {
		ps = append(ps, NewPoint(p.X, p.Y))
	}

	return ps
}

func (impl *dataSetImpl) getStore() Store {
	if impl.store == nil {
		impl.store = NewFileStoreWithConfig(impl.opts.cfg, nil, impl.opts.logger)
	}

	return impl.store
}

// Load reads name into a detached DataSet and only swaps its content in once
// the whole read succeeded, so a failed Load leaves this DataSet as it was.
func (impl *dataSetImpl) Load(name string) error {
	impl.registry.mustNotNotifying()

	loaded, err := impl.getStore().Read(name)
	if err != nil {
		impl.logger.WithFields(l.StringField("name", name), l.ErrorField(err)).Debug("load failed")

		return err
	}

	bounds := loaded.GetBounds()
	if err = bounds.Validate(); err != nil {
		return err
	}

	impl.title = loaded.GetTitle()
	impl.xLabel = loaded.GetXLabel()
	impl.yLabel = loaded.GetYLabel()
	impl.bounds = bounds
	impl.points = loaded.GetPoints()

	impl.registry.notify()

	return nil
}

func (impl *dataSetImpl) Save(name string) error {
	err := impl.getStore().Write(impl, name)
	if err != nil {
		impl.logger.WithFields(l.StringField("name", name), l.ErrorField(err)).Debug("save failed")
	}

	return err
}

func (impl *dataSetImpl) Equals(other DataSet) bool {
	if other == nil {
		return false
	}

	if impl.title != other.GetTitle() || impl.xLabel != other.GetXLabel() || impl.yLabel != other.GetYLabel() {
		return false
	}

	if impl.bounds != other.GetBounds() || len(impl.points) != other.Size() {
		return false
	}

	for idx, p := range other.GetPoints() {
		if !impl.points[idx].Equals(p) {
			return false
		}
	}

	return true
}

func (impl *dataSetImpl) String() string {
	var ss strings.Builder

	ss.WriteString("Title: " + impl.title + "\n")
	ss.WriteString("X-Axis Label: " + impl.xLabel + "\n")
	ss.WriteString("Y-Axis Label: " + impl.yLabel + "\n")
	ss.WriteString("X-Min: " + formatFloat(impl.bounds.XMin) + "\n")
	ss.WriteString("X-Max: " + formatFloat(impl.bounds.XMax) + "\n")
	ss.WriteString("Y-Min: " + formatFloat(impl.bounds.YMin) + "\n")
	ss.WriteString("Y-Max: " + formatFloat(impl.bounds.YMax) + "\n")
	ss.WriteString("Data: ")

	for _, p := range impl.points {
		ss.WriteString(p.String() + "\n")
	}

	return ss.String()
}
