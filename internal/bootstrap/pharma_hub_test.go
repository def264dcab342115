package bootstrap

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pharmahub/backend/internal/app/services"
)

func createQuestion(t *testing.T, app *testApp, title, category string) int64 {
	t.Helper()
	rec := app.do(http.MethodPost, "/api/pharma-hub/questions", object{
		"title":    title,
		"content":  "ما هي الجرعة المناسبة؟",
		"category": category,
		"author":   "طالب",
		"tags":     []string{"جرعات"},
	})
	expectStatus(t, rec, http.StatusCreated)
	q := decode[object](t, rec)
	if q["views"] != float64(0) || !reflect.DeepEqual(q["tags"], []interface{}{"جرعات"}) {
		t.Errorf("created question = %v", q)
	}
	return int64(q["id"].(float64))
}

func addComment(t *testing.T, app *testApp, questionID int64, content string) int64 {
	t.Helper()
	rec := app.do(http.MethodPost, fmt.Sprintf("/api/pharma-hub/questions/%d/comments", questionID), object{
		"content": content,
		"author":  "صيدلي",
	})
	expectStatus(t, rec, http.StatusCreated)
	c := decode[object](t, rec)
	if c["question_id"] != float64(questionID) || c["content"] != content {
		t.Errorf("created comment = %v", c)
	}
	return int64(c["id"].(float64))
}

func TestPharmaHubQuestionFlow(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	expectError(t, app.do(http.MethodPost, "/api/pharma-hub/questions", object{"title": "x"}), http.StatusBadRequest, services.MsgQuestionRequired)

	id := createQuestion(t, app, "جرعة الباراسيتامول للأطفال", "pharmacology")
	path := fmt.Sprintf("/api/pharma-hub/questions/%d", id)

	type detail struct {
		Question object   `json:"question"`
		Comments []object `json:"comments"`
	}
	first := decode[detail](t, app.do(http.MethodGet, path, nil))
	if first.Question["views"] != float64(1) || len(first.Comments) != 0 {
		t.Fatalf("first view = %+v", first)
	}
	second := decode[detail](t, app.do(http.MethodGet, path, nil))
	if second.Question["views"] != float64(2) {
		t.Errorf("views after second visit = %v", second.Question["views"])
	}

	c1 := addComment(t, app, id, "10-15 ملغ لكل كغ")
	addComment(t, app, id, "كل 6 ساعات")
	expectError(t, app.do(http.MethodPost, "/api/pharma-hub/questions/999/comments", object{"content": "x", "author": "y"}), http.StatusNotFound, services.MsgQuestionNotFound)
	expectError(t, app.do(http.MethodPost, fmt.Sprintf("%s/comments", path), object{"content": "x"}), http.StatusBadRequest, services.MsgCommentRequired)

	comments := decode[[]object](t, app.do(http.MethodGet, path+"/comments", nil))
	if len(comments) != 2 || comments[0]["id"] != float64(c1) {
		t.Errorf("comments should be oldest first: %v", comments)
	}

	commentPath := fmt.Sprintf("/api/pharma-hub/comments/%d", c1)
	expectError(t, app.do(http.MethodPut, commentPath, object{}), http.StatusBadRequest, services.MsgContentRequired)
	rec := app.do(http.MethodPut, commentPath, object{"content": "15 ملغ لكل كغ"})
	expectStatus(t, rec, http.StatusOK)
	if c := decode[object](t, rec); c["content"] != "15 ملغ لكل كغ" {
		t.Errorf("updated comment = %v", c)
	}
	expectError(t, app.do(http.MethodPut, "/api/pharma-hub/comments/999", object{"content": "x"}), http.StatusNotFound, services.MsgCommentNotFound)

	rec = app.do(http.MethodPut, path, object{"title": "عنوان معدل", "content": "محتوى", "category": "clinical"})
	expectStatus(t, rec, http.StatusOK)
	if q := decode[object](t, rec); q["title"] != "عنوان معدل" || q["author"] != "طالب" || q["views"] != float64(2) {
		t.Errorf("updated question = %v", q)
	}

	rec = app.do(http.MethodDelete, commentPath, nil)
	expectStatus(t, rec, http.StatusOK)
	if msg := decode[object](t, rec); msg["message"] != services.MsgCommentDeleted {
		t.Errorf("delete comment body = %v", msg)
	}
	expectError(t, app.do(http.MethodDelete, commentPath, nil), http.StatusNotFound, services.MsgCommentNotFound)

	rec = app.do(http.MethodDelete, path, nil)
	expectStatus(t, rec, http.StatusOK)
	if msg := decode[object](t, rec); msg["message"] != services.MsgQuestionDeleted {
		t.Errorf("delete question body = %v", msg)
	}
	expectError(t, app.do(http.MethodGet, path, nil), http.StatusNotFound, services.MsgQuestionNotFound)
	if left := decode[[]object](t, app.do(http.MethodGet, path+"/comments", nil)); len(left) != 0 {
		t.Errorf("comments should be removed with their question: %v", left)
	}

	stats := decode[object](t, app.do(http.MethodGet, "/api/pharma-hub/stats", nil))
	if stats["totalQuestions"] != float64(0) || stats["totalComments"] != float64(0) {
		t.Errorf("stats after delete = %v", stats)
	}
}

func TestPharmaHubListing(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	quiet := createQuestion(t, app, "سؤال بدون إجابات", "pharmacology")
	busy := createQuestion(t, app, "سؤال نشط", "clinical")
	popular := createQuestion(t, app, "سؤال مشهور", "clinical")
	for i := 0; i < 3; i++ {
		addComment(t, app, busy, fmt.Sprintf("إجابة %d", i))
	}
	for i := 0; i < 4; i++ {
		app.do(http.MethodGet, fmt.Sprintf("/api/pharma-hub/questions/%d", popular), nil)
	}

	ids := func(query string) []int64 {
		t.Helper()
		rec := app.do(http.MethodGet, "/api/pharma-hub/questions"+query, nil)
		expectStatus(t, rec, http.StatusOK)
		var out []int64
		for _, q := range decode[[]object](t, rec) {
			out = append(out, int64(q["id"].(float64)))
		}
		return out
	}

	if got := ids("?sort=most-answers"); len(got) != 3 || got[0] != busy {
		t.Errorf("most-answers = %v, want %d first", got, busy)
	}
	if got := ids("?sort=most-views"); len(got) != 3 || got[0] != popular {
		t.Errorf("most-views = %v, want %d first", got, popular)
	}
	if got := ids("?sort=oldest"); !reflect.DeepEqual(got, []int64{quiet, busy, popular}) {
		t.Errorf("oldest = %v", got)
	}
	if got := ids("?category=clinical"); len(got) != 2 {
		t.Errorf("clinical = %v", got)
	}
	if got := ids("?limit=1"); len(got) != 1 {
		t.Errorf("limit=1 = %v", got)
	}

	rows := decode[[]object](t, app.do(http.MethodGet, "/api/pharma-hub/questions?sort=most-answers", nil))
	if rows[0]["answer_count"] != float64(3) {
		t.Errorf("answer_count = %v", rows[0]["answer_count"])
	}

	body := expectError(t, app.do(http.MethodGet, "/api/pharma-hub/questions?sort=random", nil), http.StatusBadRequest, "")
	if body.Error.Code != "VAL_001" {
		t.Errorf("invalid sort code = %q", body.Error.Code)
	}

	stats := decode[object](t, app.do(http.MethodGet, "/api/pharma-hub/stats", nil))
	if stats["totalQuestions"] != float64(3) || stats["totalComments"] != float64(3) {
		t.Errorf("stats = %v", stats)
	}
	categories, _ := stats["categoryStats"].([]interface{})
	if len(categories) != 2 {
		t.Errorf("categoryStats = %v", stats["categoryStats"])
	}
}

func TestAdminUploads(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	app.login()

	expectError(t, app.doMultipart(http.MethodPost, "/api/admin/upload", nil, nil), http.StatusBadRequest, "No file uploaded")
	expectError(t, app.do(http.MethodPost, "/api/admin/upload", object{}), http.StatusBadRequest, "No file uploaded")

	files := map[string]part{"file": {filename: "my brochure.pdf", contentType: "application/pdf", content: []byte("%PDF-1.4 brochure")}}
	rec := app.doMultipart(http.MethodPost, "/api/admin/upload", nil, files)
	expectStatus(t, rec, http.StatusOK)
	up := decode[object](t, rec)
	url, _ := up["url"].(string)
	if up["ok"] != true || !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, "_mybrochure.pdf") {
		t.Fatalf("upload body = %v", up)
	}

	rec = app.do(http.MethodGet, url, nil)
	expectStatus(t, rec, http.StatusOK)
	if rec.Body.String() != "%PDF-1.4 brochure" {
		t.Errorf("served body = %q", rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=31536000, immutable" {
		t.Errorf("Cache-Control = %q", got)
	}

	list := decode[[]object](t, app.do(http.MethodGet, "/api/admin/files", nil))
	if len(list) != 1 || list[0]["url"] != url || list[0]["originalname"] != "my brochure.pdf" || list[0]["size"] != float64(len("%PDF-1.4 brochure")) {
		t.Fatalf("files = %v", list)
	}
	id := int64(list[0]["id"].(float64))

	onDisk := filepath.Join(app.cfg.Server.StoragePath, strings.TrimPrefix(url, "/uploads/"))
	expectStatus(t, app.do(http.MethodDelete, fmt.Sprintf("/api/admin/files/%d", id), nil), http.StatusOK)
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Errorf("file should be removed from disk, stat err = %v", err)
	}
	expectStatus(t, app.do(http.MethodGet, url, nil), http.StatusNotFound)
	expectError(t, app.do(http.MethodDelete, fmt.Sprintf("/api/admin/files/%d", id), nil), http.StatusNotFound, "File not found")
}
