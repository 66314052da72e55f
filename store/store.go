// Package store persists title parameter records per project,
// using the per user application data directory managed by gdata.
//
// A store created without a gdata manager keeps everything in
// memory, which is useful for tests and for hosts that can't write
// to disk. Records that can't be decoded fall back to the default
// parameters, as a broken project must never block rendering.
package store

import "errors"
import "fmt"
import "log"
import "regexp"
import "sort"
import "sync"

import "github.com/quasilyte/gdata/v2"
import "gopkg.in/yaml.v3"
import "github.com/tinne26/voxtitle"

// Returned when a project name can't be used as a storage key.
var ErrInvalidProject = errors.New("invalid project name")

var projectNameRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

const (
	stateProperty  = "parameters"
	indexObject    = "voxtitle"
	indexProperty  = "projects"
	projectPrefix  = "project_"
)

// A collection of named projects, each holding one encoded
// parameter record. Stores are safe for concurrent use.
type Store struct {
	mutex   sync.Mutex
	manager *gdata.Manager // nil in memory mode
	memory  map[string][]byte
}

// Opens the data store of the given application.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{ AppName: appName })
	if err != nil { return nil, fmt.Errorf("opening data store %q: %w", appName, err) }
	return New(manager), nil
}

// Creates a store on top of the given manager. A nil manager
// creates an in-memory store.
func New(manager *gdata.Manager) *Store {
	return &Store{ manager: manager, memory: make(map[string][]byte) }
}

// Reports whether the store writes to disk.
func (self *Store) Persistent() bool { return self.manager != nil }

// Saves raw state for the given project.
func (self *Store) Save(project string, state []byte) error {
	err := validateProject(project)
	if err != nil { return err }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.manager == nil {
		self.memory[project] = append([]byte(nil), state...)
		return nil
	}

	err = self.manager.SaveObjectProp(projectPrefix + project, stateProperty, state)
	if err != nil { return fmt.Errorf("saving project %q: %w", project, err) }
	return self.addToIndex(project)
}

// Loads the raw state of the given project. The boolean result
// is false if the project doesn't exist.
func (self *Store) Load(project string) ([]byte, bool, error) {
	err := validateProject(project)
	if err != nil { return nil, false, err }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.manager == nil {
		state, found := self.memory[project]
		if !found { return nil, false, nil }
		return append([]byte(nil), state...), true, nil
	}

	if !self.manager.ObjectPropExists(projectPrefix + project, stateProperty) {
		return nil, false, nil
	}
	state, err := self.manager.LoadObjectProp(projectPrefix + project, stateProperty)
	if err != nil { return nil, false, fmt.Errorf("loading project %q: %w", project, err) }
	return state, true, nil
}

// Encodes and saves the parameters of the given project.
func (self *Store) SaveParameters(project string, params voxtitle.Parameters) error {
	state, err := params.Encode()
	if err != nil { return fmt.Errorf("encoding project %q: %w", project, err) }
	err = self.Save(project, state)
	if err != nil { return err }
	log.Printf("[store] project %q saved", project)
	return nil
}

// Loads the parameters of the given project. Missing projects
// return the defaults, and so do malformed records, which are
// logged. Only storage failures are returned as errors.
func (self *Store) LoadParameters(project string) (voxtitle.Parameters, error) {
	state, found, err := self.Load(project)
	if err != nil { return voxtitle.DefaultParameters(), err }
	if !found { return voxtitle.DefaultParameters(), nil }

	params, err := voxtitle.DecodeParameters(state)
	if err != nil {
		log.Printf("[store] warning: project %q has a malformed record: %v (using defaults)", project, err)
	}
	return params, nil
}

// Returns the names of the saved projects, sorted.
func (self *Store) Projects() ([]string, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.manager == nil {
		names := make([]string, 0, len(self.memory))
		for name := range self.memory { names = append(names, name) }
		sort.Strings(names)
		return names, nil
	}
	return self.loadIndex()
}

// ---- helpers ----

func validateProject(project string) error {
	if projectNameRegexp.MatchString(project) { return nil }
	return fmt.Errorf("%w: %q", ErrInvalidProject, project)
}

// Must be called with the mutex held.
func (self *Store) loadIndex() ([]string, error) {
	if !self.manager.ObjectPropExists(indexObject, indexProperty) { return []string{}, nil }
	data, err := self.manager.LoadObjectProp(indexObject, indexProperty)
	if err != nil { return nil, fmt.Errorf("loading project index: %w", err) }
	var names []string
	err = yaml.Unmarshal(data, &names)
	if err != nil {
		log.Printf("[store] warning: project index is malformed: %v (rebuilding)", err)
		return []string{}, nil
	}
	return names, nil
}

// Must be called with the mutex held.
func (self *Store) addToIndex(project string) error {
	names, err := self.loadIndex()
	if err != nil { return err }
	index := sort.SearchStrings(names, project)
	if index < len(names) && names[index] == project { return nil }
	names = append(names, "")
	copy(names[index + 1:], names[index:])
	names[index] = project

	data, err := yaml.Marshal(names)
	if err != nil { return fmt.Errorf("encoding project index: %w", err) }
	err = self.manager.SaveObjectProp(indexObject, indexProperty, data)
	if err != nil { return fmt.Errorf("saving project index: %w", err) }
	return nil
}
