package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/presenter"
	httpmw "github.com/johnquangdev/meeting-analyzer/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-analyzer/internal/usecase/meeting"
)

// Meeting handles audio ingestion and meeting lookups
type Meeting struct {
	meetingService *meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService *meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// ProcessMeeting handles POST /process-meeting/
// @Summary      Analyze meeting audio
// @Description  Uploads audio, extracts minutes and action items, and stores them. A bearer token is optional; an invalid one is rejected.
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Meeting audio"
// @Success      200  {object}  meeting.ProcessResponse
// @Failure      400  {object}  map[string]interface{}  "Missing audio file"
// @Failure      401  {object}  map[string]interface{}  "Invalid token"
// @Failure      500  {object}  map[string]interface{}  "Processing failed"
// @Router       /process-meeting/ [post]
func (h *Meeting) ProcessMeeting(c echo.Context) error {
	return h.process(c)
}

// ProcessAudio handles POST /process-audio/
// @Summary      Analyze meeting audio without authentication
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Meeting audio"
// @Success      200  {object}  meeting.ProcessResponse
// @Failure      400  {object}  map[string]interface{}  "Missing audio file"
// @Failure      500  {object}  map[string]interface{}  "Processing failed"
// @Router       /process-audio/ [post]
func (h *Meeting) ProcessAudio(c echo.Context) error {
	return h.process(c)
}

func (h *Meeting) process(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		e := errors.ErrMissingAudioFile()
		e.Raw = err
		return HandleError(h.logger, c, e)
	}

	src, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrProcessingFailed(err))
	}
	defer src.Close()

	user, _ := httpmw.GetUser(c)
	result, err := h.meetingService.Process(c.Request().Context(), meetingUsecase.Upload{
		Filename: fh.Filename,
		Content:  src,
	}, user)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrMissingFile) {
			return HandleError(h.logger, c, errors.ErrMissingAudioFile())
		}
		return HandleError(h.logger, c, errors.ErrProcessingFailed(err))
	}

	return c.JSON(http.StatusOK, presenter.ToProcessResponse(result))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	meeting, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, c.Param("id")))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(meeting))
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Tags         Meetings
// @Produce      json
// @Param        page       query  int  false  "Page (1-based)"
// @Param        page_size  query  int  false  "Page size (max 100)"
// @Success      200  {object}  common.ListResponse
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req common.PaginationRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}
	req.Normalize()

	meetings, err := h.meetingService.ListMeetings(c.Request().Context(), req.PageSize, req.Offset())
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}
	return HandleSuccess(h.logger, c, common.ListResponse{
		Data:       presenter.ToMeetingListResponse(meetings),
		Pagination: &common.PaginationResponse{Page: req.Page, PageSize: req.PageSize},
	})
}
