package adapter

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-lab-access/internal/utils"
)

// DefaultCallbackPrefix is the fixed prefix of every callback token.
const DefaultCallbackPrefix = "cb"

type callResult struct {
	value json.RawMessage
	err   error
}

// pendingCall is the one-shot resolver behind a callback token.
type pendingCall struct {
	resCh chan callResult
}

func newPendingCall() *pendingCall {
	return &pendingCall{resCh: make(chan callResult, 1)}
}

func (p *pendingCall) resolve(value json.RawMessage) {
	p.resCh <- callResult{value: value}
}

func (p *pendingCall) reject(err error) {
	p.resCh <- callResult{err: err}
}

// callbackRegistry maps callback tokens to pending calls. It is owned by a
// single transport; tokens never leave it except inside request URLs.
type callbackRegistry struct {
	lock    sync.Mutex
	prefix  string
	counter uint64
	now     func() time.Time
	calls   map[string]*pendingCall
}

// newCallbackRegistry falls back to DefaultCallbackPrefix when prefix cannot
// start a callback name.
func newCallbackRegistry(prefix string) *callbackRegistry {
	if !utils.ValidCallbackName(prefix) {
		prefix = DefaultCallbackPrefix
	}
	return &callbackRegistry{
		prefix: prefix,
		now:    time.Now,
		calls:  make(map[string]*pendingCall),
	}
}

// nextToken returns prefix + counter + "_" + unix millis. The counter makes
// tokens unique even when generated within the same millisecond.
func (r *callbackRegistry) nextToken() string {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.counter++
	return fmt.Sprintf("%s%d_%d", r.prefix, r.counter, r.now().UnixMilli())
}

func (r *callbackRegistry) register(token string) *pendingCall {
	r.lock.Lock()
	defer r.lock.Unlock()
	call := newPendingCall()
	r.calls[token] = call
	return call
}

// take unregisters token and returns its pending call, or nil if the token
// is unknown or was already taken. Only the first taker may settle the call.
func (r *callbackRegistry) take(token string) *pendingCall {
	r.lock.Lock()
	defer r.lock.Unlock()
	call := r.calls[token]
	if call == nil {
		return nil
	}
	delete(r.calls, token)
	return call
}

func (r *callbackRegistry) tokens() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	out := make([]string, 0, len(r.calls))
	for token := range r.calls {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}
