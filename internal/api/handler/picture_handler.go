package handler

import (
	"crypto/rand"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medconnect/portal-api/internal/core/ports"
)

// maxPictureBytes bounds how much of an upload is read into memory.
const maxPictureBytes = 5 << 20

// PictureHandler handles profile picture uploads for signup drafts.
// Conversion to the stored data-URI form happens asynchronously on the
// dispatcher; re-uploading into the same draft is allowed and the
// conversion that completes last is the one the draft keeps.
type PictureHandler struct {
	dispatcher ports.PictureDispatcher
	drafts     ports.PictureDrafts
}

func NewPictureHandler(dispatcher ports.PictureDispatcher, drafts ports.PictureDrafts) *PictureHandler {
	return &PictureHandler{dispatcher: dispatcher, drafts: drafts}
}

type pictureAcceptedResponse struct {
	DraftID string `json:"draftId"`
	Status  string `json:"status"`
}

type pictureResponse struct {
	DraftID string `json:"draftId"`
	Picture string `json:"picture"`
}

// Upload handles POST /signup/picture — accepts a multipart image and
// enqueues its conversion, returning 202 with the draft ID to poll.
//
// @Summary      Upload a profile picture for a signup draft
// @Tags         pictures
// @Accept       multipart/form-data
// @Produce      json
// @Param        image     formData  file    true   "Image file"
// @Param        draft_id  formData  string  false  "Existing draft to overwrite"
// @Success      202       {object}  pictureAcceptedResponse
// @Failure      400       {object}  errorResponse
// @Router       /signup/picture [post]
func (h *PictureHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "image file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unreadable image file"})
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxPictureBytes))
	if err != nil || len(data) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unreadable image file"})
	}

	draftID := c.FormValue("draft_id")
	if draftID == "" {
		draftID, err = generateDraftID()
		if err != nil {
			return err
		}
	}

	h.dispatcher.Enqueue(ports.ConversionJob{
		DraftID:  draftID,
		Filename: fileHeader.Filename,
		Data:     data,
	})

	return c.JSON(http.StatusAccepted, pictureAcceptedResponse{
		DraftID: draftID,
		Status:  "converting",
	})
}

// Current handles GET /signup/picture/:draft_id — returns the converted
// picture, or 404 while no conversion has completed yet.
//
// @Summary      Fetch the converted picture for a signup draft
// @Tags         pictures
// @Produce      json
// @Param        draft_id  path      string  true  "Draft ID"
// @Success      200       {object}  pictureResponse
// @Failure      404       {object}  errorResponse
// @Router       /signup/picture/{draft_id} [get]
func (h *PictureHandler) Current(c echo.Context) error {
	draftID := c.Param("draft_id")
	pic, ok := h.drafts.Picture(draftID)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "no picture for draft"})
	}
	return c.JSON(http.StatusOK, pictureResponse{DraftID: draftID, Picture: pic})
}

func generateDraftID() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("draft-%X", b), nil
}
