package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"seminary/pkg/apperr"
	"seminary/pkg/logger"
	"seminary/services/seminary/internal/entity"
	"seminary/services/seminary/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Multipart file fields, in the order their files become materials.
var materialFields = []string{"lectureFile", "materials", "materials[]"}

type LectureHandler struct {
	lectureUseCase usecase.LectureUseCase
	logger         *logger.Logger
}

func NewLectureHandler(lectureUseCase usecase.LectureUseCase, logger *logger.Logger) *LectureHandler {
	return &LectureHandler{
		lectureUseCase: lectureUseCase,
		logger:         logger,
	}
}

type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ListLectures godoc
// @Summary      List lectures
// @Description  One page of lecture summaries. Out-of-range paging values are clamped; a page past the end is empty.
// @Tags         lectures
// @Produce      json
// @Param        category query string false "Category filter, \"all\" for none" default(all)
// @Param        page     query int    false "Page number" default(1)
// @Param        pageSize query int    false "Items per page" default(5)
// @Param        sortBy   query string false "registerDate | oldest | series | instructor"
// @Success      200  {object}  entity.LecturePage
// @Router       /lectures [get]
func (h *LectureHandler) ListLectures(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	result, err := h.lectureUseCase.List(c.Request.Context(), entity.ListQuery{
		Category: c.DefaultQuery("category", entity.CategoryAll),
		Page:     page,
		PageSize: pageSize,
		SortBy:   c.Query("sortBy"),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLecture godoc
// @Summary      Get lecture
// @Description  Full lecture record with materials and embed links
// @Tags         lectures
// @Produce      json
// @Param        id   path      string  true  "Lecture ID"
// @Success      200  {object}  entity.Lecture
// @Failure      404  {object}  ErrorResponse
// @Router       /lectures/{id} [get]
func (h *LectureHandler) GetLecture(c *gin.Context) {
	lecture, err := h.lectureUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, lecture)
}

// CreateLecture godoc
// @Summary      Create lecture
// @Description  Admin only. Uploaded files are stored and attached as materials in upload order.
// @Tags         lectures
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        category         formData string true  "Category"
// @Param        series           formData string true  "Series"
// @Param        number           formData string true  "Number within the series"
// @Param        instructor       formData string true  "Instructor"
// @Param        description      formData string false "Description"
// @Param        duration         formData string false "Duration, hh:mm:ss"
// @Param        youtubeEmbedLink formData string false "YouTube link (alias youtubeLink)"
// @Param        driveEmbedLink   formData string false "Google Drive link (alias driveLink)"
// @Param        lectureFile      formData file   false "Main lecture file"
// @Param        materials        formData file   false "Material files"
// @Success      201  {object}  entity.Lecture
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /lectures [post]
func (h *LectureHandler) CreateLecture(c *gin.Context) {
	uploads, err := formUploads(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	patch := formPatch(c)
	input := entity.LectureInput{
		Category:         deref(patch.Category),
		Series:           deref(patch.Series),
		Number:           deref(patch.Number),
		Instructor:       deref(patch.Instructor),
		Description:      deref(patch.Description),
		Duration:         deref(patch.Duration),
		YoutubeEmbedLink: deref(patch.YoutubeEmbedLink),
		DriveEmbedLink:   deref(patch.DriveEmbedLink),
	}

	lecture, err := h.lectureUseCase.Create(c.Request.Context(), caller(c), input, uploads)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, lecture)
}

// UpdateLecture godoc
// @Summary      Update lecture
// @Description  Admin only. Only submitted fields change; new files are appended after the existing materials.
// @Tags         lectures
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id               path     string true  "Lecture ID"
// @Param        category         formData string false "Category"
// @Param        series           formData string false "Series"
// @Param        number           formData string false "Number within the series"
// @Param        instructor       formData string false "Instructor"
// @Param        description      formData string false "Description"
// @Param        duration         formData string false "Duration, hh:mm:ss"
// @Param        youtubeEmbedLink formData string false "YouTube link (alias youtubeLink)"
// @Param        driveEmbedLink   formData string false "Google Drive link (alias driveLink)"
// @Param        materials        formData file   false "Material files to append"
// @Success      200  {object}  entity.Lecture
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /lectures/{id} [put]
func (h *LectureHandler) UpdateLecture(c *gin.Context) {
	uploads, err := formUploads(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	lecture, err := h.lectureUseCase.Update(c.Request.Context(), caller(c), c.Param("id"), formPatch(c), uploads)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, lecture)
}

// DeleteLecture godoc
// @Summary      Delete lecture
// @Description  Admin only. Removes the lecture and its materials immediately.
// @Tags         lectures
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Lecture ID"
// @Success      200  {object}  DeleteResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /lectures/{id} [delete]
func (h *LectureHandler) DeleteLecture(c *gin.Context) {
	id := c.Param("id")
	if err := h.lectureUseCase.Delete(c.Request.Context(), caller(c), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Deleted: true, ID: id})
}

// formPatch collects the submitted lecture fields; absent fields stay nil.
func formPatch(c *gin.Context) entity.LecturePatch {
	field := func(names ...string) *string {
		for _, name := range names {
			if v, ok := c.GetPostForm(name); ok {
				return &v
			}
		}
		return nil
	}

	return entity.LecturePatch{
		Category:         field("category"),
		Series:           field("series"),
		Number:           field("number"),
		Instructor:       field("instructor"),
		Description:      field("description"),
		Duration:         field("duration"),
		YoutubeEmbedLink: field("youtubeEmbedLink", "youtubeLink"),
		DriveEmbedLink:   field("driveEmbedLink", "driveLink"),
	}
}

func formUploads(c *gin.Context) ([]usecase.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperr.InvalidInput("upload exceeds the size limit")
		}
		return nil, apperr.Wrap(err, apperr.KindInvalidInput, "malformed multipart form")
	}

	var uploads []usecase.Upload
	for _, field := range materialFields {
		for _, fh := range form.File[field] {
			uploads = append(uploads, fileUpload(fh))
		}
	}
	return uploads, nil
}

func fileUpload(fh *multipart.FileHeader) usecase.Upload {
	return usecase.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadSeekCloser, error) {
			return fh.Open()
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
