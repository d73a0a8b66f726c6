package poeditor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/openlocalize/poeditor-go/pkg/poeditor"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for the end-to-end tests: an in-process mock of the
 * POEditor service with enough real behavior (project/language/term state,
 * envelope responses, signed export URLs, multipart uploads) to drive the
 * client through complete flows.
 */

const testToken = "e2e-test-token"

type projectRecord struct {
	Name              string
	Description       string
	ReferenceLanguage string
	Created           string
	Languages         map[string]bool
	Terms             []poeditor.Term
}

type mockService struct {
	mu       sync.Mutex
	nextID   int
	projects map[int]*projectRecord

	// lastUpload keeps the fields of the most recent projects/upload call
	// for assertions.
	lastUpload map[string][]string

	baseURL string
}

func newMockService() *mockService {
	return &mockService{
		nextID:   100,
		projects: make(map[int]*projectRecord),
	}
}

// setupService starts the mock service and returns a client wired to it.
func setupService(t *testing.T) (*poeditor.Client, *mockService) {
	t.Helper()

	svc := newMockService()
	srv := httptest.NewServer(svc)
	t.Cleanup(srv.Close)
	svc.baseURL = srv.URL

	return poeditor.New(testToken, poeditor.WithBaseURL(srv.URL)), svc
}

func (s *mockService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/exports/latest.po" {
		_, _ = w.Write([]byte(exportContent))
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			writeFail(w, "400", "cannot parse form")
			return
		}
	}

	if formValue(r, "api_token") != testToken {
		writeFail(w, "4011", "Invalid API Token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.URL.Path {
	case "/projects/list":
		s.handleProjectsList(w)
	case "/projects/add":
		s.handleProjectsAdd(w, r)
	case "/projects/view":
		s.handleProjectsView(w, r)
	case "/projects/update":
		s.handleProjectsUpdate(w, r)
	case "/projects/delete":
		s.handleProjectsDelete(w, r)
	case "/projects/sync":
		s.handleProjectsSync(w, r)
	case "/projects/export":
		writeOK(w, map[string]any{"url": s.baseURL + "/exports/latest.po"})
	case "/projects/upload":
		s.handleProjectsUpload(w, r)
	case "/languages/available":
		writeOK(w, map[string]any{"languages": []map[string]string{
			{"name": "French", "code": "fr"},
			{"name": "German", "code": "de"},
		}})
	case "/languages/list":
		s.handleLanguagesList(w, r)
	case "/languages/add":
		s.handleLanguagesAdd(w, r)
	case "/languages/delete":
		s.handleLanguagesDelete(w, r)
	case "/languages/update":
		s.handleLanguagesUpdate(w, r)
	case "/terms/list":
		s.handleTermsList(w, r)
	case "/terms/add":
		s.handleTermsAdd(w, r)
	case "/terms/delete":
		s.handleTermsDelete(w, r)
	case "/terms/add_comment":
		s.handleTermsAddComment(w, r)
	case "/contributors/list":
		writeOK(w, map[string]any{"contributors": []map[string]any{}})
	case "/contributors/add", "/contributors/remove":
		writeOK(w, map[string]any{})
	default:
		http.NotFound(w, r)
	}
}

func (s *mockService) handleProjectsList(w http.ResponseWriter) {
	projects := make([]map[string]any, 0, len(s.projects))
	for id, p := range s.projects {
		projects = append(projects, map[string]any{
			"id": strconv.Itoa(id), "name": p.Name,
			"open": "0", "public": "0", "created": p.Created,
		})
	}
	writeOK(w, map[string]any{"projects": projects})
}

func (s *mockService) handleProjectsAdd(w http.ResponseWriter, r *http.Request) {
	s.nextID++
	id := s.nextID
	s.projects[id] = &projectRecord{
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		Created:     time.Now().UTC().Format("2006-01-02T15:04:05Z0700"),
		Languages:   make(map[string]bool),
	}
	writeOK(w, map[string]any{"project": map[string]any{"id": id}})
}

func (s *mockService) handleProjectsView(w http.ResponseWriter, r *http.Request) {
	id, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	writeOK(w, map[string]any{"project": map[string]any{
		"id": id, "name": p.Name, "description": p.Description,
		"open": 0, "public": 0, "created": p.Created,
		"reference_language": p.ReferenceLanguage, "terms": len(p.Terms),
	}})
}

func (s *mockService) handleProjectsUpdate(w http.ResponseWriter, r *http.Request) {
	id, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	// Only fields present in the request are updated.
	if vs, present := r.Form["name"]; present {
		p.Name = vs[0]
	}
	if vs, present := r.Form["description"]; present {
		p.Description = vs[0]
	}
	if vs, present := r.Form["reference_language"]; present {
		p.ReferenceLanguage = vs[0]
	}
	writeOK(w, map[string]any{"project": map[string]any{"id": id}})
}

func (s *mockService) handleProjectsDelete(w http.ResponseWriter, r *http.Request) {
	id, _, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	delete(s.projects, id)
	writeOK(w, map[string]any{})
}

func (s *mockService) handleProjectsSync(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	incoming, ok := parseTerms(w, r)
	if !ok {
		return
	}
	deleted := 0
	kept := make(map[string]bool, len(incoming))
	for _, term := range incoming {
		kept[term.Term+"\x00"+term.Context] = true
	}
	for _, term := range p.Terms {
		if !kept[term.Term+"\x00"+term.Context] {
			deleted++
		}
	}
	added := 0
	existing := make(map[string]bool, len(p.Terms))
	for _, term := range p.Terms {
		existing[term.Term+"\x00"+term.Context] = true
	}
	for _, term := range incoming {
		if !existing[term.Term+"\x00"+term.Context] {
			added++
		}
	}
	p.Terms = incoming
	writeOK(w, map[string]any{"terms": map[string]int{
		"parsed": len(incoming), "added": added, "deleted": deleted,
	}})
}

func (s *mockService) handleProjectsUpload(w http.ResponseWriter, r *http.Request) {
	_, _, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	if r.MultipartForm == nil {
		writeFail(w, "4050", "Upload must be multipart")
		return
	}
	if _, _, err := r.FormFile("file"); err != nil {
		writeFail(w, "4051", "Missing file")
		return
	}
	s.lastUpload = r.MultipartForm.Value
	writeOK(w, map[string]any{
		"terms":        map[string]int{"parsed": 2, "added": 2, "deleted": 0},
		"translations": map[string]int{"parsed": 2, "added": 2, "updated": 0},
	})
}

func (s *mockService) handleLanguagesList(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	languages := make([]map[string]any, 0, len(p.Languages))
	for code := range p.Languages {
		languages = append(languages, map[string]any{
			"name": code, "code": code, "translations": 0, "percentage": 0,
			"updated": "",
		})
	}
	writeOK(w, map[string]any{"languages": languages})
}

func (s *mockService) handleLanguagesAdd(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	code := formValue(r, "language")
	if p.Languages[code] {
		writeFail(w, "4042", "Language already in project")
		return
	}
	p.Languages[code] = true
	writeOK(w, map[string]any{})
}

func (s *mockService) handleLanguagesDelete(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	delete(p.Languages, formValue(r, "language"))
	writeOK(w, map[string]any{})
}

func (s *mockService) handleLanguagesUpdate(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	if !p.Languages[formValue(r, "language")] {
		writeFail(w, "4043", "Language not in project")
		return
	}
	entries, ok := parseTerms(w, r)
	if !ok {
		return
	}
	writeOK(w, map[string]any{"translations": map[string]int{
		"parsed": len(entries), "added": len(entries), "updated": 0,
	}})
}

func (s *mockService) handleTermsList(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	writeOK(w, map[string]any{"terms": p.Terms})
}

func (s *mockService) handleTermsAdd(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	terms, ok := parseTerms(w, r)
	if !ok {
		return
	}
	p.Terms = append(p.Terms, terms...)
	writeOK(w, map[string]any{"terms": map[string]int{
		"parsed": len(terms), "added": len(terms),
	}})
}

func (s *mockService) handleTermsDelete(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	targets, ok := parseTerms(w, r)
	if !ok {
		return
	}
	gone := make(map[string]bool, len(targets))
	for _, term := range targets {
		gone[term.Term+"\x00"+term.Context] = true
	}
	kept := p.Terms[:0]
	deleted := 0
	for _, term := range p.Terms {
		if gone[term.Term+"\x00"+term.Context] {
			deleted++
			continue
		}
		kept = append(kept, term)
	}
	p.Terms = kept
	writeOK(w, map[string]any{"terms": map[string]int{
		"parsed": len(targets), "deleted": deleted,
	}})
}

func (s *mockService) handleTermsAddComment(w http.ResponseWriter, r *http.Request) {
	_, _, ok := s.project(r)
	if !ok {
		writeFail(w, "4040", "Project not found")
		return
	}
	terms, ok := parseTerms(w, r)
	if !ok {
		return
	}
	writeOK(w, map[string]any{"terms": map[string]int{
		"parsed": len(terms), "with_added_comment": len(terms),
	}})
}

// project resolves the id form field to a stored record. Must be called with
// the mutex held.
func (s *mockService) project(r *http.Request) (int, *projectRecord, bool) {
	id, err := strconv.Atoi(formValue(r, "id"))
	if err != nil {
		return 0, nil, false
	}
	p, ok := s.projects[id]
	return id, p, ok
}

const exportContent = "msgid \"Projects\"\nmsgstr \"Des projets\"\n"

func formValue(r *http.Request, key string) string {
	if r.MultipartForm != nil {
		if vs := r.MultipartForm.Value[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}
	return r.PostFormValue(key)
}

func parseTerms(w http.ResponseWriter, r *http.Request) ([]poeditor.Term, bool) {
	var terms []poeditor.Term
	if err := json.Unmarshal([]byte(formValue(r, "data")), &terms); err != nil {
		writeFail(w, "4030", "Malformed data field")
		return nil, false
	}
	return terms, true
}

func writeOK(w http.ResponseWriter, result any) {
	writeEnvelope(w, "success", "200", "OK", result)
}

func writeFail(w http.ResponseWriter, code, message string) {
	writeEnvelope(w, "fail", code, message, map[string]any{})
}

func writeEnvelope(w http.ResponseWriter, status, code, message string, result any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"response": map[string]string{
			"status":  status,
			"code":    code,
			"message": message,
		},
		"result": result,
	})
}

// requireServiceError asserts err is a service error with the given code.
func requireServiceError(t *testing.T, err error, code string) {
	t.Helper()

	var apiErr *poeditor.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code, "unexpected service error: %v", err)
}
