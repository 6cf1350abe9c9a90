package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/stretchr/testify/assert"
)

func utCustomDataSet(t *testing.T) DataSet {
	ds := mustDataSet(t, "title", "xAxis", "yAxis", Bounds{XMin: -1000, XMax: 1000, YMin: -1000000, YMax: 1000000})

	for _, p := range [][2]float64{{10.2, 10.2}, {100.3, 100.2}, {0, 0}, {-999.9, -2999.9}, {999.9, 999999.9}} {
		assert.True(t, ds.Add(Float64(p[0]), Float64(p[1])))
	}

	return ds
}

func TestFileStoreWriteRead(t *testing.T) {
	root := filepath.Join(utRoot, "store")
	store := NewFileStore(root, nil, nil)

	def := NewDataSet()
	assert.Nil(t, store.Write(def, "tests"))

	d, err := os.ReadFile(filepath.Join(root, "tests.jjf"))
	assert.Nil(t, err)
	assert.Equal(t, Encode(def), d)

	loaded, err := store.Read("tests")
	assert.Nil(t, err)
	assert.True(t, def.Equals(loaded))

	custom := utCustomDataSet(t)
	assert.Nil(t, store.Write(custom, "tests"))

	loaded, err = store.Read("tests")
	assert.Nil(t, err)
	assert.True(t, custom.Equals(loaded))
}

func TestFileStoreWithStorage(t *testing.T) {
	_ = pathutils.MustDirExists(filepath.Join(utRoot, "storage"))

	cfg := DefaultConfig()
	cfg.DataRoot = "storage"
	cfg.FileExt = ".dat"

	store := NewFileStoreWithConfig(cfg, rawfs.NewFSStorage(utRoot), nil)

	custom := utCustomDataSet(t)
	assert.Nil(t, store.Write(custom, "custom"))

	_, err := os.Stat(filepath.Join(utRoot, "storage", "custom.dat"))
	assert.Nil(t, err)

	loaded, err := store.Read("custom")
	assert.Nil(t, err)
	assert.True(t, custom.Equals(loaded))
}

func TestFileStoreNotFound(t *testing.T) {
	store := NewFileStore(filepath.Join(utRoot, "store"), nil, nil)

	ds, err := store.Read("no-such-data-set")
	assert.Nil(t, ds)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestFileStoreIOFailure(t *testing.T) {
	root := filepath.Join(utRoot, "io")
	_ = pathutils.MustDirExists(filepath.Join(root, "adir.jjf"))

	store := NewFileStore(root, nil, nil)

	err := store.Write(NewDataSet(), "adir")
	assert.True(t, errors.Is(err, ErrIOFailure))

	_, err = store.Read("adir")
	assert.True(t, errors.Is(err, ErrIOFailure))
}

func TestFileStoreReadCache(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataRoot = filepath.Join(utRoot, "cache")
	cfg.ReadCacheTTL = time.Minute

	store := NewFileStoreWithConfig(cfg, nil, nil)

	def := NewDataSet()
	assert.Nil(t, store.Write(def, "cached"))

	assert.Nil(t, os.WriteFile(filepath.Join(cfg.DataRoot, "cached.jjf"), []byte("garbage"), 0600))

	loaded, err := store.Read("cached")
	assert.Nil(t, err)
	assert.True(t, def.Equals(loaded))

	custom := utCustomDataSet(t)
	assert.Nil(t, store.Write(custom, "cached"))

	loaded, err = store.Read("cached")
	assert.Nil(t, err)
	assert.True(t, custom.Equals(loaded))
}

func TestSaveLoad(t *testing.T) {
	store := NewFileStore(filepath.Join(utRoot, "save-load"), nil, nil)

	custom := utCustomDataSet(t)
	assert.Nil(t, NewDataSet(WithStore(store)).Save("default_dataset"))

	custom2, err := NewDataSetEx(custom.GetTitle(), custom.GetXLabel(), custom.GetYLabel(), custom.GetBounds(), WithStore(store))
	assert.Nil(t, err)

	for _, p := range custom.GetPoints() {
		custom2.Add(p.X, p.Y)
	}

	assert.Nil(t, custom2.Save("customData"))

	ds := NewDataSet(WithStore(store))
	ds.Add(Float64(1), Float64(1))

	o := &utObserver{}
	ds.Attach(o)

	assert.Nil(t, ds.Load("customData"))
	assert.Equal(t, 1, o.count)
	assert.True(t, custom.Equals(ds))

	assert.Nil(t, ds.Load("default_dataset"))
	assert.Equal(t, 2, o.count)
	assert.True(t, NewDataSet().Equals(ds))
}

func TestLoadFailureKeepsDataSet(t *testing.T) {
	root := filepath.Join(utRoot, "load-failure")
	_ = pathutils.MustDirExists(root)

	store := NewFileStore(root, nil, nil)

	assert.Nil(t, os.WriteFile(filepath.Join(root, "invalidRange.jjf"),
		[]byte("Title=t\nX-Axis Label=x\nY-Axis Label=y\nX-Min=10\nX-Max=0\nY-Min=0\nY-Max=10\n1,1\n"), 0600))
	assert.Nil(t, os.WriteFile(filepath.Join(root, "malformed.jjf"),
		[]byte("Title=t\nX-Axis Label=x\nY-Axis Label=y\nX-Min=0\nX-Max=10\nY-Min=0\nY-Max=10\n1,1\n2;2\n"), 0600))

	ds := utCustomDataSet(t)
	ds2, _ := NewDataSetEx(ds.GetTitle(), ds.GetXLabel(), ds.GetYLabel(), ds.GetBounds(), WithStore(store))

	for _, p := range ds.GetPoints() {
		ds2.Add(p.X, p.Y)
	}

	o := &utObserver{}
	ds2.Attach(o)

	err := ds2.Load("missing")
	assert.True(t, errors.Is(err, ErrFileNotFound))

	err = ds2.Load("invalidRange")
	assert.True(t, errors.Is(err, ErrInvalidRange))

	err = ds2.Load("malformed")
	assert.True(t, errors.Is(err, ErrMalformed))

	assert.Equal(t, 0, o.count)
	assert.True(t, ds.Equals(ds2))
}

func TestLoadInvalidPoints(t *testing.T) {
	root := filepath.Join(utRoot, "invalid-points")
	_ = pathutils.MustDirExists(root)

	assert.Nil(t, os.WriteFile(filepath.Join(root, "invalidPoints.jjf"),
		[]byte("Title=title\nX-Axis Label=x-axis label\nY-Axis Label=y-axis label\n"+
			"X-Min=-10.0\nX-Max=10.0\nY-Min=-10.0\nY-Max=10.0\n"+
			"1.0,1.0\n100.0,1.0\n-3.5,2.5\n1.0,-100.0\n"), 0600))

	want := mustDataSet(t, "title", "x-axis label", "y-axis label", Bounds{XMin: -10, XMax: 10, YMin: -10, YMax: 10})
	want.Add(Float64(1), Float64(1))
	want.Add(Float64(-3.5), Float64(2.5))

	ds := NewDataSet(WithStore(NewFileStore(root, nil, nil)))
	assert.Nil(t, ds.Load("invalidPoints"))
	assert.True(t, want.Equals(ds))
}

func TestSaveWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataRoot = filepath.Join(utRoot, "by-config")

	ds := NewDataSet(WithConfig(cfg))
	ds.Add(Float64(2), Float64(3))
	assert.Nil(t, ds.Save("plot"))

	_, err := os.Stat(filepath.Join(cfg.DataRoot, "plot.jjf"))
	assert.Nil(t, err)

	loaded := NewDataSet(WithConfig(cfg))
	assert.Nil(t, loaded.Load("plot"))
	assert.True(t, ds.Equals(loaded))
}

func TestSaveRefusesLabelBreaks(t *testing.T) {
	root := filepath.Join(utRoot, "label-break")
	store := NewFileStore(root, nil, nil)

	ds := NewDataSet(WithStore(store))
	assert.Nil(t, ds.Save("plot"))

	ds.SetXLabel("a\nb")

	err := ds.Save("plot")
	assert.True(t, errors.Is(err, ErrLabelBreak))

	err = store.Write(ds, "other")
	assert.True(t, errors.Is(err, ErrLabelBreak))

	_, err = os.Stat(filepath.Join(root, "other.jjf"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	loaded := NewDataSet(WithStore(store))
	assert.Nil(t, loaded.Load("plot"))
	assert.True(t, NewDataSet().Equals(loaded))
}
