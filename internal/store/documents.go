package store

import "github.com/ratheesh-12/HostelMS/internal/model"

// DocumentPatch carries the fields an update may overwrite.
type DocumentPatch struct {
	Name     *string               `json:"name"`
	Type     *string               `json:"type"`
	FileURL  *string               `json:"fileUrl"`
	FileSize *string               `json:"fileSize"`
	Status   *model.DocumentStatus `json:"status"`
	Comments *string               `json:"comments"`
}

// Documents returns a copy of the documents collection.
func (s *Store) Documents() []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// DocumentsByStudent returns the documents uploaded by the given student.
func (s *Store) DocumentsByStudent(studentID string) []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Document
	for _, d := range s.documents {
		if d.StudentID == studentID {
			out = append(out, d)
		}
	}
	return out
}

// Document looks up a document by id.
func (s *Store) Document(id string) (model.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.documents {
		if d.ID == id {
			return d, true
		}
	}
	return model.Document{}, false
}

// AddDocument assigns a fresh id and appends the document.
func (s *Store) AddDocument(d model.Document) model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = nextID("doc", &s.documentSeq)
	s.documents = append(s.documents, d)
	return d
}

// UpdateDocument shallow-merges the patch over the stored document.
func (s *Store) UpdateDocument(id string, p DocumentPatch) (model.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.documents {
		if d.ID != id {
			continue
		}
		if p.Name != nil {
			d.Name = *p.Name
		}
		if p.Type != nil {
			d.Type = *p.Type
		}
		if p.FileURL != nil {
			d.FileURL = *p.FileURL
		}
		if p.FileSize != nil {
			d.FileSize = *p.FileSize
		}
		if p.Status != nil {
			d.Status = *p.Status
		}
		if p.Comments != nil {
			d.Comments = *p.Comments
		}
		s.documents[i] = d
		return d, true
	}
	return model.Document{}, false
}

// DeleteDocument removes the document with the given id, if present.
func (s *Store) DeleteDocument(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.documents {
		if d.ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			return true
		}
	}
	return false
}
