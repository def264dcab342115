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

func lectureFields(title, date string) map[string]string {
	return map[string]string{
		"title":       title,
		"description": "مقدمة في علم الأدوية",
		"type":        "محاضرة نظرية",
		"mode":        "حضوري",
		"date":        date,
		"location":    "القاعة 3",
		"time":        "10:00",
	}
}

func TestLectureWithPDF(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	app.login()

	pdf := map[string]part{"pdf": {filename: "Week1.PDF", contentType: "application/pdf", content: []byte("%PDF-1.4 week one")}}
	rec := app.doMultipart(http.MethodPost, "/api/lectures", lectureFields("الأسبوع الأول", "2025-02-15"), pdf)
	expectStatus(t, rec, http.StatusCreated)
	created := decode[object](t, rec)
	if created["message"] != services.MsgLectureCreated {
		t.Errorf("create body = %v", created)
	}
	id := int64(created["id"].(float64))
	path := fmt.Sprintf("/api/lectures/%d", id)

	lecture := decode[object](t, app.do(http.MethodGet, path, nil))
	pdfPath, _ := lecture["pdf_path"].(string)
	pdfURL, _ := lecture["pdf_url"].(string)
	if !strings.HasPrefix(pdfPath, "lectures/lecture-") || !strings.HasSuffix(pdfPath, ".pdf") {
		t.Fatalf("pdf_path = %q", pdfPath)
	}
	if pdfURL != "/uploads/"+pdfPath {
		t.Fatalf("pdf_url = %q, want /uploads/%s", pdfURL, pdfPath)
	}

	app.cookie = nil
	rec = app.do(http.MethodGet, pdfURL, nil)
	expectStatus(t, rec, http.StatusOK)
	if rec.Body.String() != "%PDF-1.4 week one" {
		t.Errorf("served pdf = %q", rec.Body.String())
	}
	app.login()

	// Replacing the PDF removes the previous file
	oldFile := filepath.Join(app.cfg.Server.StoragePath, filepath.FromSlash(pdfPath))
	pdf = map[string]part{"pdf": {filename: "week1-v2.pdf", contentType: "application/pdf", content: []byte("%PDF-1.4 v2")}}
	rec = app.doMultipart(http.MethodPut, path, lectureFields("الأسبوع الأول", "2025-02-15"), pdf)
	expectStatus(t, rec, http.StatusOK)
	if msg := decode[object](t, rec); msg["message"] != services.MsgLectureUpdated {
		t.Errorf("update body = %v", msg)
	}
	if _, err := os.Stat(oldFile); !os.IsNotExist(err) {
		t.Errorf("old pdf should be deleted, stat err = %v", err)
	}
	lecture = decode[object](t, app.do(http.MethodGet, path, nil))
	newPath, _ := lecture["pdf_path"].(string)
	if newPath == "" || newPath == pdfPath {
		t.Fatalf("pdf_path after replace = %q", newPath)
	}

	// An update without a file keeps the current PDF
	rec = app.doMultipart(http.MethodPut, path, lectureFields("عنوان جديد", "2025-02-16"), nil)
	expectStatus(t, rec, http.StatusOK)
	lecture = decode[object](t, app.do(http.MethodGet, path, nil))
	if lecture["pdf_path"] != newPath || lecture["title"] != "عنوان جديد" {
		t.Errorf("lecture after plain update = %v", lecture)
	}

	newFile := filepath.Join(app.cfg.Server.StoragePath, filepath.FromSlash(newPath))
	rec = app.do(http.MethodDelete, path, nil)
	expectStatus(t, rec, http.StatusOK)
	if msg := decode[object](t, rec); msg["message"] != services.MsgLectureDeleted {
		t.Errorf("delete body = %v", msg)
	}
	if _, err := os.Stat(newFile); !os.IsNotExist(err) {
		t.Errorf("pdf should be deleted with the lecture, stat err = %v", err)
	}
	expectError(t, app.do(http.MethodGet, path, nil), http.StatusNotFound, services.MsgLectureNotFound)
}

func TestLectureRejectsNonPDF(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	app.login()

	files := map[string]part{"pdf": {filename: "slides.pptx", contentType: "application/vnd.ms-powerpoint", content: []byte("nope")}}
	rec := app.doMultipart(http.MethodPost, "/api/lectures", lectureFields("x", "2025-01-01"), files)
	body := expectError(t, rec, http.StatusUnsupportedMediaType, "")
	if body.Error.Code != "FILE_001" {
		t.Errorf("code = %q", body.Error.Code)
	}

	lectures := decode[[]object](t, app.do(http.MethodGet, "/api/lectures", nil))
	if len(lectures) != 0 {
		t.Errorf("rejected upload created a lecture: %v", lectures)
	}
	entries, _ := os.ReadDir(filepath.Join(app.cfg.Server.StoragePath, "lectures"))
	if len(entries) != 0 {
		t.Errorf("rejected upload left files behind: %v", entries)
	}
}

func TestLectureValidationAndOrdering(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	app.login()

	expectError(t, app.do(http.MethodPost, "/api/lectures", object{"title": "x"}), http.StatusBadRequest, services.MsgLectureRequired)
	expectError(t, app.doMultipart(http.MethodPost, "/api/lectures", map[string]string{"title": "x"}, nil), http.StatusBadRequest, services.MsgLectureRequired)

	for _, l := range []struct{ title, date string }{
		{"March", "2025-03-01"},
		{"January", "2025-01-10"},
		{"February", "2025-02-05"},
	} {
		body := object{}
		for k, v := range lectureFields(l.title, l.date) {
			body[k] = v
		}
		rec := app.do(http.MethodPost, "/api/lectures", body)
		expectStatus(t, rec, http.StatusCreated)
	}

	titles := func(path string) []string {
		var out []string
		for _, l := range decode[[]object](t, app.do(http.MethodGet, path, nil)) {
			out = append(out, l["title"].(string))
			if l["pdf_url"] != nil {
				t.Errorf("lecture without a pdf has pdf_url %v", l["pdf_url"])
			}
		}
		return out
	}
	if got := titles("/api/lectures"); !reflect.DeepEqual(got, []string{"March", "February", "January"}) {
		t.Errorf("newest first = %v", got)
	}
	if got := titles("/api/lectures/public"); !reflect.DeepEqual(got, []string{"January", "February", "March"}) {
		t.Errorf("upcoming first = %v", got)
	}
	if rows := decode[[]object](t, app.do(http.MethodGet, "/api/public/lectures", nil)); len(rows) != 3 {
		t.Errorf("public lectures = %d rows", len(rows))
	}

	expectError(t, app.do(http.MethodPut, "/api/lectures/999", func() object {
		body := object{}
		for k, v := range lectureFields("x", "2025-01-01") {
			body[k] = v
		}
		return body
	}()), http.StatusNotFound, services.MsgLectureNotFound)
}
