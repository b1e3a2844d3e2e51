package adapter

import (
	"sort"
	"sync"
)

// loader is one in-flight script load, the equivalent of an injected
// script element.
type loader struct {
	token string
	url   string
}

// loaderSet tracks loaders until their request settles.
type loaderSet struct {
	lock    sync.Mutex
	loaders map[string]*loader
}

func newLoaderSet() *loaderSet {
	return &loaderSet{loaders: make(map[string]*loader)}
}

func (s *loaderSet) insert(token, url string) *loader {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := &loader{token: token, url: url}
	s.loaders[token] = l
	return l
}

func (s *loaderSet) remove(token string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.loaders, token)
}

func (s *loaderSet) urls() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	out := make([]string, 0, len(s.loaders))
	for _, l := range s.loaders {
		out = append(out, l.url)
	}
	sort.Strings(out)
	return out
}
