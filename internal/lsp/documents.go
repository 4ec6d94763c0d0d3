package lsp

import "sync"

type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open document contents keyed by URI, along with the
// analysis of the current content once it has been computed.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

func (s *DocumentStore) Open(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content}
}

// Update replaces the content and drops the cached analysis.
func (s *DocumentStore) Update(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content}
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Result returns the analysis of the document's current content, running
// Analyze at most once per version. It returns nil for unknown URIs.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil
	}
	if doc.result == nil {
		doc.result = Analyze(uri, doc.content)
	}
	return doc.result
}
