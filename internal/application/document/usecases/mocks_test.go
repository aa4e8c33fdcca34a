package usecases

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
)

type mockDocumentRepo struct {
	docs   map[uint]*document.Document
	nextID uint
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{docs: map[uint]*document.Document{}, nextID: 1}
}

func (m *mockDocumentRepo) Create(ctx context.Context, doc *document.Document) error {
	if err := doc.SetID(m.nextID); err != nil {
		return err
	}
	m.docs[m.nextID] = doc
	m.nextID++
	return nil
}

func (m *mockDocumentRepo) Update(ctx context.Context, doc *document.Document) error {
	m.docs[doc.ID()] = doc
	return nil
}

func (m *mockDocumentRepo) Delete(ctx context.Context, id uint) error {
	delete(m.docs, id)
	return nil
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, id uint) (*document.Document, error) {
	return m.docs[id], nil
}

func (m *mockDocumentRepo) GetBySlug(ctx context.Context, slug string) (*document.Document, error) {
	for _, doc := range m.docs {
		if doc.Slug() == slug {
			return doc, nil
		}
	}
	return nil, nil
}

func (m *mockDocumentRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	for _, doc := range m.docs {
		if doc.Slug() == slug && doc.ID() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDocumentRepo) Search(ctx context.Context, filter document.SearchFilter) ([]*document.Document, int64, error) {
	var out []*document.Document
	for _, doc := range m.docs {
		if filter.Status != "" && doc.Status() != filter.Status {
			continue
		}
		if filter.Status == "" && !filter.IncludeArchived && doc.Status().IsArchived() {
			continue
		}
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, int64(len(out)), nil
}

func (m *mockDocumentRepo) ListRelated(ctx context.Context, categoryID, excludeID uint, limit int) ([]*document.Document, error) {
	return nil, nil
}

func (m *mockDocumentRepo) ListRecent(ctx context.Context, limit int) ([]*document.Document, error) {
	return nil, nil
}

func (m *mockDocumentRepo) CountByStatus(ctx context.Context) (map[vo.DocumentStatus]int64, error) {
	counts := map[vo.DocumentStatus]int64{}
	for _, doc := range m.docs {
		counts[doc.Status()]++
	}
	return counts, nil
}

type mockVersionRepo struct {
	versions map[uint][]*document.Version
	nextID   uint
}

func newMockVersionRepo() *mockVersionRepo {
	return &mockVersionRepo{versions: map[uint][]*document.Version{}, nextID: 1}
}

func (m *mockVersionRepo) Add(ctx context.Context, v *document.Version) error {
	for _, existing := range m.versions[v.DocumentID] {
		existing.IsCurrent = false
	}
	v.ID = m.nextID
	v.IsCurrent = true
	m.nextID++
	m.versions[v.DocumentID] = append(m.versions[v.DocumentID], v)
	return nil
}

func (m *mockVersionRepo) List(ctx context.Context, documentID uint) ([]*document.Version, error) {
	out := append([]*document.Version(nil), m.versions[documentID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].VersionNumber > out[j].VersionNumber })
	return out, nil
}

func (m *mockVersionRepo) GetCurrent(ctx context.Context, documentID uint) (*document.Version, error) {
	for _, v := range m.versions[documentID] {
		if v.IsCurrent {
			return v, nil
		}
	}
	return nil, nil
}

func (m *mockVersionRepo) NextVersionNumber(ctx context.Context, documentID uint) (int, error) {
	max := 0
	for _, v := range m.versions[documentID] {
		if v.VersionNumber > max {
			max = v.VersionNumber
		}
	}
	return max + 1, nil
}

type mockObjectStore struct {
	objects map[string][]byte
}

func newMockObjectStore() *mockObjectStore {
	return &mockObjectStore{objects: map[string][]byte{}}
}

func (m *mockObjectStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *mockObjectStore) PresignGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error) {
	return "https://store.local/" + key + "?signed=1", nil
}

func (m *mockObjectStore) Remove(ctx context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

type mockAuditor struct {
	entries []*audit.Entry
}

func (m *mockAuditor) Record(ctx context.Context, entry *audit.Entry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditor) List(ctx context.Context, actorID uint, limit int) ([]*audit.Entry, error) {
	return m.entries, nil
}
