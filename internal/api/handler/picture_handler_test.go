package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medconnect/portal-api/internal/core/ports"
)

type recordingDispatcher struct {
	mu   sync.Mutex
	jobs []ports.ConversionJob
}

func (d *recordingDispatcher) Enqueue(job ports.ConversionJob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
}

type fixedDrafts struct {
	pictures map[string]string
}

func (d *fixedDrafts) SetPicture(draftID, dataURI string) {
	d.pictures[draftID] = dataURI
}

func (d *fixedDrafts) Picture(draftID string) (string, bool) {
	pic, ok := d.pictures[draftID]
	return pic, ok
}

func multipartUpload(t *testing.T, fieldName, filename string, data []byte, draftID string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if draftID != "" {
		_ = writer.WriteField("draft_id", draftID)
	}
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/signup/picture", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestPictureHandler_Upload_NewDraft(t *testing.T) {
	e := echo.New()
	dispatcher := &recordingDispatcher{}
	handler := NewPictureHandler(dispatcher, &fixedDrafts{pictures: map[string]string{}})

	req := multipartUpload(t, "image", "avatar.png", []byte{0x89, 'P', 'N', 'G'}, "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp pictureAcceptedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DraftID == "" {
		t.Fatal("expected a generated draft ID")
	}
	if resp.Status != "converting" {
		t.Fatalf("status: got %q", resp.Status)
	}

	if len(dispatcher.jobs) != 1 {
		t.Fatalf("expected one enqueued job, got %d", len(dispatcher.jobs))
	}
	job := dispatcher.jobs[0]
	if job.DraftID != resp.DraftID || job.Filename != "avatar.png" {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestPictureHandler_Upload_ReusesDraftID(t *testing.T) {
	e := echo.New()
	dispatcher := &recordingDispatcher{}
	handler := NewPictureHandler(dispatcher, &fixedDrafts{pictures: map[string]string{}})

	req := multipartUpload(t, "image", "second.jpg", []byte{0xFF, 0xD8, 0xFF}, "draft-EXISTING")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp pictureAcceptedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DraftID != "draft-EXISTING" {
		t.Fatalf("expected the supplied draft ID, got %q", resp.DraftID)
	}
}

func TestPictureHandler_Upload_MissingFile(t *testing.T) {
	e := echo.New()
	dispatcher := &recordingDispatcher{}
	handler := NewPictureHandler(dispatcher, &fixedDrafts{pictures: map[string]string{}})

	req := httptest.NewRequest(http.MethodPost, "/signup/picture", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(dispatcher.jobs) != 0 {
		t.Fatal("nothing must be enqueued without a file")
	}
}

func TestPictureHandler_Current(t *testing.T) {
	e := echo.New()
	drafts := &fixedDrafts{pictures: map[string]string{
		"draft-1": "data:image/png;base64,AAAA",
	}}
	handler := NewPictureHandler(&recordingDispatcher{}, drafts)

	t.Run("converted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/signup/picture/draft-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("draft_id")
		c.SetParamValues("draft-1")

		if err := handler.Current(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp pictureResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp.Picture != "data:image/png;base64,AAAA" {
			t.Fatalf("picture: got %q", resp.Picture)
		}
	})

	t.Run("pending", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/signup/picture/draft-2", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("draft_id")
		c.SetParamValues("draft-2")

		if err := handler.Current(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
