package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

// EditorSpec parameterizes the one generic editor per resource kind. The
// five near-identical controllers of the original admin screens collapse
// into instances of this.
type EditorSpec[T domain.Resource] struct {
	// Kind is the human-readable singular name used in toasts ("project").
	Kind string
	// Route is the REST collection the gateway addresses ("projects").
	Route string
	// ListRoute is where the operator lands when an editor load fails.
	ListRoute string
	// Defaults seeds the working copy in create mode.
	Defaults func() T
	// FileFields names the JSON fields that carry uploaded assets. They are
	// omitted from submit payloads unless staged or explicitly cleared.
	FileFields []string
	// SetBool patches a toggle field on a record in place, reporting
	// whether the field name was recognized.
	SetBool func(rec *T, field string, value bool) bool
}

// Editor drives the load / edit-fields / submit / reconcile cycle for one
// resource kind. Field edits touch only the working copy; the list cache
// and the backend change together at submit time.
type Editor[T domain.Resource] struct {
	spec   EditorSpec[T]
	gw     ports.ResourceGateway
	nav    ports.Navigator
	toasts *Toasts
	cache  *ListCache[T]
	log    zerolog.Logger

	mu         sync.Mutex
	working    T
	editing    bool
	staged     map[string]ports.FilePart
	cleared    map[string]bool
	submitting bool
}

func NewEditor[T domain.Resource](spec EditorSpec[T], gw ports.ResourceGateway, nav ports.Navigator, toasts *Toasts, log zerolog.Logger) *Editor[T] {
	e := &Editor[T]{
		spec:   spec,
		gw:     gw,
		nav:    nav,
		toasts: toasts,
		cache:  NewListCache[T](),
		log:    log.With().Str("resource", spec.Route).Logger(),
	}
	e.resetLocked()
	return e
}

// Cache exposes the list cache backing this resource's listing screen.
func (e *Editor[T]) Cache() *ListCache[T] { return e.cache }

// Refresh reloads the listing from the backend and replaces the cache.
func (e *Editor[T]) Refresh(ctx context.Context) error {
	raw, err := e.gw.List(ctx, e.spec.Route)
	if err != nil {
		return err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("%w: list of %s: %v", domain.ErrMalformedResponse, e.spec.Route, err)
	}
	e.cache.Replace(items)
	return nil
}

// Load seeds the working copy: defaults when id is empty (create mode), or
// the fetched record (edit mode). A fetch failure navigates back to the
// listing and surfaces a toast; the operator is never left in an editor
// for a record that could not be loaded.
func (e *Editor[T]) Load(ctx context.Context, id string) error {
	if id == "" {
		e.mu.Lock()
		e.resetLocked()
		e.mu.Unlock()
		return nil
	}

	raw, err := e.gw.Get(ctx, e.spec.Route, id)
	if err == nil {
		var rec T
		if uerr := json.Unmarshal(raw, &rec); uerr != nil {
			err = fmt.Errorf("%w: %s %s: %v", domain.ErrMalformedResponse, e.spec.Kind, id, uerr)
		} else {
			e.mu.Lock()
			e.working = rec
			e.editing = true
			e.staged = make(map[string]ports.FilePart)
			e.cleared = make(map[string]bool)
			e.mu.Unlock()
			return nil
		}
	}

	e.toasts.Error(domain.FailureMessage(err, "could not load "+e.spec.Kind))
	e.nav.NavigateTo(e.spec.ListRoute)
	return err
}

// Working returns the current working copy.
func (e *Editor[T]) Working() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.working
}

// Mutate applies a field edit to the working copy only. Nothing reaches
// the cache or the backend until Submit.
func (e *Editor[T]) Mutate(fn func(*T)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.working)
}

// StageFile stages an upload for a declared file field. The file is held
// locally (its name doubles as the preview) and not sent until Submit.
func (e *Editor[T]) StageFile(field, filename string, content []byte) error {
	if !e.isFileField(field) {
		return fmt.Errorf("%w: %q is not a file field of %s", domain.ErrValidation, field, e.spec.Kind)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.staged[field] = ports.FilePart{Field: field, Filename: filename, Content: content}
	delete(e.cleared, field)
	return nil
}

// ClearFile records that the operator removed the existing asset. This is
// a clear instruction to the backend, distinct from leaving the field
// untouched (which omits it from the payload entirely).
func (e *Editor[T]) ClearFile(field string) {
	if !e.isFileField(field) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.staged, field)
	e.cleared[field] = true
}

// Preview reports the staged filename for a file field, if one is staged.
func (e *Editor[T]) Preview(field string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fp, ok := e.staged[field]
	return fp.Filename, ok
}

// InFlight reports whether a submit is outstanding; the submit control is
// disabled while it is.
func (e *Editor[T]) InFlight() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitting
}

// Submit validates the working copy, sends it (multipart when a file is
// staged), and on success reconciles the list cache and re-seeds the
// working copy from the backend's record. On failure the working copy is
// left intact so the operator can retry without re-entering anything.
func (e *Editor[T]) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return domain.ErrInFlight
	}
	working := e.working
	editing := e.editing
	payload := e.payloadLocked()
	e.submitting = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.submitting = false
		e.mu.Unlock()
	}()

	if err := validateStruct(working); err != nil {
		// Local precondition failure: no call is issued.
		e.toasts.Warning(err.Error())
		return err
	}

	var (
		raw json.RawMessage
		err error
	)
	if editing {
		raw, err = e.gw.Update(ctx, e.spec.Route, working.ResourceID(), payload)
	} else {
		raw, err = e.gw.Create(ctx, e.spec.Route, payload)
	}
	if err != nil {
		e.toasts.Error(domain.FailureMessage(err, "could not save "+e.spec.Kind))
		return err
	}

	var saved T
	if uerr := json.Unmarshal(raw, &saved); uerr != nil {
		err = fmt.Errorf("%w: saved %s: %v", domain.ErrMalformedResponse, e.spec.Kind, uerr)
		e.toasts.Error(domain.FailureMessage(err, ""))
		return err
	}

	e.cache.Upsert(saved)
	e.mu.Lock()
	e.working = saved
	e.editing = true
	e.staged = make(map[string]ports.FilePart)
	e.cleared = make(map[string]bool)
	e.mu.Unlock()

	e.toasts.Success(e.spec.Kind + " saved")
	e.log.Info().Str("id", saved.ResourceID()).Bool("created", !editing).Msg("record saved")
	return nil
}

// Delete removes a record from the listing screen. The confirmed flag is
// the explicit user confirmation step; without it no call is issued. On
// failure the cache is left untouched.
func (e *Editor[T]) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := e.gw.Delete(ctx, e.spec.Route, id); err != nil {
		e.toasts.Error(domain.FailureMessage(err, "could not delete "+e.spec.Kind))
		return err
	}
	e.cache.Remove(id)
	e.toasts.Success(e.spec.Kind + " deleted")
	return nil
}

// Toggle is the fast path for publish/active/featured flips: only the
// changed field travels, and on success only that field is patched in the
// cache. Overlapping toggles on the same record resolve by identity:
// the last response to land wins.
func (e *Editor[T]) Toggle(ctx context.Context, id, field string, value bool) error {
	if e.spec.SetBool == nil {
		return fmt.Errorf("%w: %s has no toggle fields", domain.ErrValidation, e.spec.Kind)
	}
	if _, err := e.gw.Toggle(ctx, e.spec.Route, id, field, value); err != nil {
		e.toasts.Error(domain.FailureMessage(err, "could not update "+e.spec.Kind))
		return err
	}
	e.cache.Patch(id, func(rec *T) {
		if !e.spec.SetBool(rec, field, value) {
			e.log.Warn().Str("field", field).Msg("toggle field not recognized for cache patch")
		}
	})
	return nil
}

// payloadLocked assembles the submit payload. File fields are stripped
// unless staged or cleared; cleared fields go out as an explicit empty
// value.
func (e *Editor[T]) payloadLocked() ports.Payload {
	p := ports.Payload{Body: e.working}
	for _, fp := range e.staged {
		p.Files = append(p.Files, fp)
	}
	for field := range e.cleared {
		p.Clear = append(p.Clear, field)
	}
	for _, field := range e.spec.FileFields {
		if _, staged := e.staged[field]; staged {
			continue
		}
		if e.cleared[field] {
			continue
		}
		p.Omit = append(p.Omit, field)
	}
	return p
}

func (e *Editor[T]) isFileField(field string) bool {
	for _, f := range e.spec.FileFields {
		if f == field {
			return true
		}
	}
	return false
}

func (e *Editor[T]) resetLocked() {
	e.working = e.spec.Defaults()
	e.editing = false
	e.staged = make(map[string]ports.FilePart)
	e.cleared = make(map[string]bool)
}

// AddListValue appends a value to a list-valued field (tags, features,
// technologies). Blanks and duplicates are rejected silently: the list
// comes back unchanged, which is a no-op rather than an error.
func AddListValue(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return list
	}
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// RemoveListValue removes a value from a list-valued field by value.
func RemoveListValue(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
