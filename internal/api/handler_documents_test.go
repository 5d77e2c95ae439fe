package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratheesh-12/HostelMS/internal/model"
)

func TestStudentUploadsDocument(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "student", "student")

	w := doJSON(router, http.MethodPost, "/api/documents", gin.H{
		"name": "Bonafide Certificate", "type": "Academic", "fileSize": "900 KB",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var doc model.Document
	decode(t, w, &doc)
	assert.Equal(t, "doc4", doc.ID)
	assert.Equal(t, "student1", doc.StudentID)
	assert.Equal(t, model.DocumentPending, doc.Status)
	assert.NotEmpty(t, doc.UploadDate)
}

func TestDocumentListRoleFiltering(t *testing.T) {
	router, s, _ := newTestRouter()
	s.AddDocument(model.Document{StudentID: "student2", Name: "Hostel Form", Type: "Admission", Status: model.DocumentPending})

	login(t, router, "student", "student")
	w := doJSON(router, http.MethodGet, "/api/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var docs []model.Document
	decode(t, w, &docs)
	require.Len(t, docs, 3)
	for _, d := range docs {
		assert.Equal(t, "student1", d.StudentID)
	}

	login(t, router, "staff", "staff")
	w = doJSON(router, http.MethodGet, "/api/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &docs)
	assert.Len(t, docs, 4)
}

func TestStaffReviewsDocument(t *testing.T) {
	router, _, _ := newTestRouter()
	login(t, router, "staff", "staff")

	w := doJSON(router, http.MethodPatch, "/api/documents/doc2", gin.H{
		"status": "approved", "comments": "Looks good",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var doc model.Document
	decode(t, w, &doc)
	assert.Equal(t, model.DocumentApproved, doc.Status)
	assert.Equal(t, "Looks good", doc.Comments)

	w = doJSON(router, http.MethodPatch, "/api/documents/doc2", gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentDeletesOwnDocumentOnly(t *testing.T) {
	router, s, _ := newTestRouter()
	other := s.AddDocument(model.Document{StudentID: "student2", Name: "Hostel Form", Type: "Admission", Status: model.DocumentPending})

	login(t, router, "student", "student")

	w := doJSON(router, http.MethodDelete, "/api/documents/"+other.ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/documents/doc1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	_, ok := s.Document("doc1")
	assert.False(t, ok)
}
