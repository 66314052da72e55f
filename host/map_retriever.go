package host

import "fmt"
import "sort"
import "sync"

import "github.com/tinne26/voxtitle"

// An in-memory [Retriever]. Float parameters can have keyframes,
// which are linearly interpolated and held constant before the first
// and after the last one. Other values are constant over time.
//
// MapRetrievers are safe for concurrent use.
type MapRetriever struct {
	mutex     sync.RWMutex
	values    map[voxtitle.ParamID]any
	keyframes map[voxtitle.ParamID][]keyframe
}

type keyframe struct {
	time  float64
	value float64
}

var _ Retriever = (*MapRetriever)(nil)

// Creates an empty retriever. Every parameter will keep its default.
func NewMapRetriever() *MapRetriever {
	return &MapRetriever{
		values: make(map[voxtitle.ParamID]any),
		keyframes: make(map[voxtitle.ParamID][]keyframe),
	}
}

// Creates a retriever holding the given parameters.
func MapRetrieverFrom(params voxtitle.Parameters) *MapRetriever {
	retriever := NewMapRetriever()
	for _, spec := range voxtitle.Specs {
		value, _ := params.Value(spec.ID)
		retriever.values[spec.ID] = value
	}
	return retriever
}

// Sets a constant value for the given parameter, replacing any
// keyframes it had.
func (self *MapRetriever) Set(id voxtitle.ParamID, value any) error {
	var scratch voxtitle.Parameters
	scratch, err := scratch.With(id, value)
	if err != nil { return err }
	value, _ = scratch.Value(id) // normalizes ints to floats

	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.values[id] = value
	delete(self.keyframes, id)
	return nil
}

// Parses and sets a value given the parameter record key
// (e.g. "size" or "textColor"). See [voxtitle.ParameterSpec.Parse]().
func (self *MapRetriever) SetString(key string, raw string) error {
	spec, found := voxtitle.SpecByKey(key)
	if !found { return fmt.Errorf("%w: %q", voxtitle.ErrUnknownParam, key) }
	value, err := spec.Parse(raw)
	if err != nil { return err }
	return self.Set(spec.ID, value)
}

// Adds a keyframe to a float parameter. A keyframe at an existing
// time replaces the previous one.
func (self *MapRetriever) SetKeyframe(id voxtitle.ParamID, time float64, value float64) error {
	spec, found := voxtitle.SpecByID(id)
	if !found { return fmt.Errorf("%w: %d", voxtitle.ErrUnknownParam, id) }
	if spec.Kind != voxtitle.KindFloat {
		return fmt.Errorf("%w: %s can't have keyframes", voxtitle.ErrParamType, spec.Key)
	}

	self.mutex.Lock()
	defer self.mutex.Unlock()
	frames := append([]keyframe(nil), self.keyframes[id]...) // readers may hold the old slice
	index := sort.Search(len(frames), func(i int) bool { return frames[i].time >= time })
	if index < len(frames) && frames[index].time == time {
		frames[index].value = value
	} else {
		frames = append(frames, keyframe{})
		copy(frames[index + 1:], frames[index:])
		frames[index] = keyframe{ time: time, value: value }
	}
	self.keyframes[id] = frames
	delete(self.values, id)
	return nil
}

func (self *MapRetriever) String(id voxtitle.ParamID, _ float64) (string, bool) {
	return lookup[string](self, id)
}

func (self *MapRetriever) FontName(id voxtitle.ParamID, _ float64) (string, bool) {
	return lookup[string](self, id)
}

func (self *MapRetriever) Color(id voxtitle.ParamID, _ float64) (voxtitle.Color, bool) {
	return lookup[voxtitle.Color](self, id)
}

func (self *MapRetriever) Bool(id voxtitle.ParamID, _ float64) (bool, bool) {
	return lookup[bool](self, id)
}

func (self *MapRetriever) Float(id voxtitle.ParamID, time float64) (float64, bool) {
	self.mutex.RLock()
	frames := self.keyframes[id]
	self.mutex.RUnlock()
	if len(frames) == 0 { return lookup[float64](self, id) }
	return interpolate(frames, time), true
}

func lookup[T any](self *MapRetriever, id voxtitle.ParamID) (T, bool) {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	value, found := self.values[id].(T)
	return value, found
}

// Frames must be sorted by time and non-empty.
func interpolate(frames []keyframe, time float64) float64 {
	if time <= frames[0].time || time != time { return frames[0].value }
	last := frames[len(frames) - 1]
	if time >= last.time { return last.value }
	index := sort.Search(len(frames), func(i int) bool { return frames[i].time > time })
	prev, next := frames[index - 1], frames[index]
	t := (time - prev.time)/(next.time - prev.time)
	return prev.value + (next.value - prev.value)*t
}
