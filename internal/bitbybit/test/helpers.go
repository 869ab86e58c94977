package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

const (
	TestToken = "test-access-token"

	// TopicWithoutNotes is seeded without study notes, so generating from it fails
	TopicWithoutNotes int64 = 99
)

var bannerPathRegex = regexp.MustCompile(`^/api/banners/(\d+)/$`)

// RecordedRequest captures what the fake backend received
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// FakeBackend is an in-process stand-in for the BitByBit REST API
type FakeBackend struct {
	Server *httptest.Server

	mu              sync.Mutex
	token           string
	nextBannerID    int64
	banners         []models.Banner
	topics          []models.Topic
	exams           []models.Exam
	savedQuestions  map[int64][]models.Question
	generateResults int
	requests        []RecordedRequest
}

// NewFakeBackend starts a fake API that accepts the given token for protected
// endpoints. An empty token disables authentication checks.
func NewFakeBackend(t *testing.T, token string) *FakeBackend {
	t.Helper()

	b := &FakeBackend{
		token:        token,
		nextBannerID: 1,
		topics: []models.Topic{
			{ID: 1, Title: "Modern History"},
			{ID: 2, Title: "Number System"},
			{ID: TopicWithoutNotes, Title: "Empty Topic"},
		},
		exams: []models.Exam{
			{ID: 1, Title: "Agniveer GD Mock 1", DurationMinutes: 60},
			{ID: 2, Title: "Agniveer Tech Mock 1", DurationMinutes: 60},
		},
		savedQuestions: make(map[int64][]models.Question),
	}

	b.Server = httptest.NewServer(http.HandlerFunc(b.serveHTTP))
	t.Cleanup(b.Server.Close)

	return b
}

// URL returns the API base address of the fake backend
func (b *FakeBackend) URL() string {
	return b.Server.URL + "/api/"
}

// SeedBanner inserts a banner directly, bypassing the API
func (b *FakeBackend) SeedBanner(banner models.Banner) models.Banner {
	b.mu.Lock()
	defer b.mu.Unlock()

	banner.ID = b.nextBannerID
	b.nextBannerID++
	b.banners = append(b.banners, banner)
	return banner
}

// RemoveBanner deletes a banner directly, bypassing the API
func (b *FakeBackend) RemoveBanner(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, banner := range b.banners {
		if banner.ID == id {
			b.banners = append(b.banners[:i], b.banners[i+1:]...)
			return
		}
	}
}

// Banners returns a copy of the stored banners
func (b *FakeBackend) Banners() []models.Banner {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Banner(nil), b.banners...)
}

// SavedQuestions returns the questions persisted into an exam
func (b *FakeBackend) SavedQuestions(examID int64) []models.Question {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Question(nil), b.savedQuestions[examID]...)
}

// Exam returns the stored exam with the given ID
func (b *FakeBackend) Exam(examID int64) (models.Exam, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, exam := range b.exams {
		if exam.ID == examID {
			return exam, true
		}
	}
	return models.Exam{}, false
}

// Requests returns every request received so far
func (b *FakeBackend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RecordedRequest(nil), b.requests...)
}

// LastRequest returns the most recent request
func (b *FakeBackend) LastRequest() RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return RecordedRequest{}
	}
	return b.requests[len(b.requests)-1]
}

func (b *FakeBackend) serveHTTP(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Body != nil {
		defer r.Body.Close()
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err == nil {
			body = raw
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests = append(b.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   body,
	})

	// Listing banners is public, as the landing page carousel needs it
	public := r.Method == http.MethodGet && r.URL.Path == "/api/banners/"
	if !public && b.token != "" && r.Header.Get("Authorization") != "JWT "+b.token {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Authentication credentials were not provided."})
		return
	}

	switch {
	case r.URL.Path == "/api/banners/" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, b.bannersOrEmpty())
	case r.URL.Path == "/api/banners/" && r.Method == http.MethodPost:
		b.createBanner(w, body)
	case bannerPathRegex.MatchString(r.URL.Path) && r.Method == http.MethodDelete:
		id, _ := strconv.ParseInt(bannerPathRegex.FindStringSubmatch(r.URL.Path)[1], 10, 64)
		b.deleteBanner(w, id)
	case r.URL.Path == "/api/topics/" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, b.topics)
	case r.URL.Path == "/api/exams/" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, b.exams)
	case r.URL.Path == "/api/ai-generator/generate/" && r.Method == http.MethodPost:
		b.generate(w, body)
	case r.URL.Path == "/api/ai-generator/save_bulk/" && r.Method == http.MethodPost:
		b.saveBulk(w, body)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	}
}

func (b *FakeBackend) bannersOrEmpty() []models.Banner {
	if b.banners == nil {
		return []models.Banner{}
	}
	return b.banners
}

func (b *FakeBackend) createBanner(w http.ResponseWriter, body []byte) {
	var banner models.Banner
	if err := json.Unmarshal(body, &banner); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}
	if banner.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"title": {"This field may not be blank."}})
		return
	}

	banner.ID = b.nextBannerID
	b.nextBannerID++
	b.banners = append(b.banners, banner)
	writeJSON(w, http.StatusCreated, banner)
}

func (b *FakeBackend) deleteBanner(w http.ResponseWriter, id int64) {
	for i, banner := range b.banners {
		if banner.ID == id {
			b.banners = append(b.banners[:i], b.banners[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (b *FakeBackend) generate(w http.ResponseWriter, body []byte) {
	var req models.GenerateQuestionsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}

	found := false
	for _, topic := range b.topics {
		if topic.ID == req.TopicID {
			found = true
		}
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	if req.TopicID == TopicWithoutNotes {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "This topic has no notes to generate from."})
		return
	}

	questions := make([]models.Question, 0, req.NumQuestions)
	for i := 0; i < req.NumQuestions; i++ {
		b.generateResults++
		questions = append(questions, models.Question{
			QuestionText: fmt.Sprintf("%s (%s #%d)?", gofakeit.Question(), req.Difficulty, b.generateResults),
			Options:      []string{gofakeit.Word(), gofakeit.Word(), gofakeit.Word(), gofakeit.Word()},
			CorrectIndex: gofakeit.IntRange(0, 3),
			Marks:        1,
		})
	}
	writeJSON(w, http.StatusOK, questions)
}

func (b *FakeBackend) saveBulk(w http.ResponseWriter, body []byte) {
	var req models.SaveBulkRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}

	idx := -1
	for i, exam := range b.exams {
		if exam.ID == req.ExamID {
			idx = i
		}
	}
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}

	if req.Duration > 0 {
		b.exams[idx].DurationMinutes = req.Duration
	}
	b.savedQuestions[req.ExamID] = append(b.savedQuestions[req.ExamID], req.Questions...)

	writeJSON(w, http.StatusOK, models.SaveBulkResponse{
		Status:          "success",
		Added:           len(req.Questions),
		DurationUpdated: req.Duration > 0,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
