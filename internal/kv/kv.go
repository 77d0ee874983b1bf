// Package kv is the persistence seam of the tracker: a synchronous,
// string-keyed store of raw JSON documents, one document per logical key.
package kv

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Store is the underlying durable medium. Implementations hold raw strings
// under string keys; the Adapter layers JSON semantics on top.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Adapter wraps a Store with the access contract every repository relies on:
//
//   - Load parses the stored JSON into dest and reports success; absent keys,
//     read failures and unparseable documents all degrade to "not loaded" so
//     callers substitute their documented default. Load never fails loudly.
//   - Save serializes the value and writes it only when the serialized form
//     differs byte-for-byte from what is currently stored. The OnWrite hook
//     fires exactly once per actual write, never on no-op saves.
//
// Write failures are logged, remembered for the health surface and returned
// to the caller; they must never crash anything above this layer.
type Adapter struct {
	store  Store
	prefix string

	mu           sync.Mutex
	onWrite      func(key string, at time.Time)
	lastWriteAt  time.Time
	lastWriteErr error
}

// NewAdapter creates an adapter over the given medium. The prefix, when not
// empty, namespaces every key (useful for running several instances against
// one database).
func NewAdapter(store Store, prefix string) *Adapter {
	return &Adapter{store: store, prefix: prefix}
}

// OnWrite registers a hook invoked after every actual write.
func (a *Adapter) OnWrite(fn func(key string, at time.Time)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onWrite = fn
}

// Load reads the JSON document under key into dest. Returns false when the
// key is absent, the read fails, or the document does not parse; dest is
// left untouched in that case.
func (a *Adapter) Load(ctx context.Context, key string, dest any) bool {
	raw, ok, err := a.store.Get(ctx, a.prefix+key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("kv: read failed, using fallback")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("kv: stored document unparseable, using fallback")
		return false
	}
	return true
}

// Save writes value under key, skipping the write when the serialized form
// is byte-identical to what is already stored.
func (a *Adapter) Save(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		a.recordWriteErr(key, err)
		return err
	}

	current, ok, getErr := a.store.Get(ctx, a.prefix+key)
	if getErr == nil && ok && current == string(encoded) {
		return nil // no-op write, hook must not fire
	}

	if err := a.store.Set(ctx, a.prefix+key, string(encoded)); err != nil {
		a.recordWriteErr(key, err)
		return err
	}

	a.mu.Lock()
	a.lastWriteAt = time.Now()
	a.lastWriteErr = nil
	hook := a.onWrite
	at := a.lastWriteAt
	a.mu.Unlock()

	if hook != nil {
		hook(key, at)
	}
	return nil
}

// Delete removes the document under key. Absence is not an error.
func (a *Adapter) Delete(ctx context.Context, key string) error {
	return a.store.Delete(ctx, a.prefix+key)
}

// LastWrite reports the time of the last successful write and the last write
// error, if any. Used by the health endpoint.
func (a *Adapter) LastWrite() (time.Time, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastWriteAt, a.lastWriteErr
}

func (a *Adapter) recordWriteErr(key string, err error) {
	logrus.WithError(err).WithField("key", key).Warn("kv: write failed, state not persisted")
	a.mu.Lock()
	a.lastWriteErr = err
	a.mu.Unlock()
}
