package store

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// MemStore is an in-process implementation of LanguageStoreIface and
// WordStoreIface. It keeps the same invariants as SQLStore: ids are never
// reused, words must reference an existing language, a language with words
// cannot be deleted, and lists are ordered newest first.
type MemStore struct {
	mu         sync.RWMutex
	languages  map[int64]Language
	words      map[int64]Word
	nextLangID int64
	nextWordID int64
}

func NewMemStore() *MemStore {
	return &MemStore{
		languages: make(map[int64]Language),
		words:     make(map[int64]Word),
	}
}

func (m *MemStore) AddLanguage(_ context.Context, payload AddLanguage) (*Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextLangID++
	l := Language{ID: m.nextLangID, Name: payload.Name}
	m.languages[l.ID] = l
	return &l, nil
}

func (m *MemStore) ListLanguages(_ context.Context) ([]*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	langs := lo.MapToSlice(m.languages, func(_ int64, l Language) *Language { return &l })
	sort.Slice(langs, func(i, j int) bool { return langs[i].ID > langs[j].ID })
	return langs, nil
}

func (m *MemStore) UpdateLanguage(_ context.Context, id int64, payload UpdateLanguage) (*Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.languages[id]
	if !ok {
		return nil, notFound()
	}
	l.Name = payload.Name
	m.languages[id] = l
	return &l, nil
}

func (m *MemStore) DeleteLanguage(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.languages[id]; !ok {
		return notFound()
	}
	inUse := lo.SomeBy(lo.Values(m.words), func(w Word) bool { return w.LangID == id })
	if inUse {
		return unexpected("delete language", ErrLanguageInUse)
	}
	delete(m.languages, id)
	return nil
}

func (m *MemStore) AddWord(_ context.Context, langID int64, payload AddWord) (*Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.languages[langID]; !ok {
		return nil, unexpected("add word", ErrConstraint)
	}
	m.nextWordID++
	w := Word{ID: m.nextWordID, Name: payload.Name, Means: payload.Means, LangID: langID}
	m.words[w.ID] = w
	return &w, nil
}

func (m *MemStore) ListWords(_ context.Context, langID int64) ([]*Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owned := lo.Filter(lo.Values(m.words), func(w Word, _ int) bool { return w.LangID == langID })
	words := lo.Map(owned, func(w Word, _ int) *Word { return &w })
	sort.Slice(words, func(i, j int) bool { return words[i].ID > words[j].ID })
	return words, nil
}

func (m *MemStore) UpdateWord(_ context.Context, langID, id int64, payload UpdateWord) (*Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.words[id]
	if !ok || w.LangID != langID {
		return nil, notFound()
	}
	w.Name = payload.Name
	w.Means = payload.Means
	m.words[id] = w
	return &w, nil
}

func (m *MemStore) DeleteWord(_ context.Context, langID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.words[id]
	if !ok || w.LangID != langID {
		return notFound()
	}
	delete(m.words, id)
	return nil
}
