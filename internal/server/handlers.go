package server

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/anmicius0/taskprogress/internal/config"
	"github.com/anmicius0/taskprogress/internal/report"
	"github.com/anmicius0/taskprogress/internal/settings"
	"github.com/anmicius0/taskprogress/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles request-time dependencies for the API routes.
type Handler struct {
	store   Store
	reports *settings.Validated[config.ReportSettings]
}

// newHandler constructs a Handler with attached dependencies.
func newHandler(store Store, reports *settings.Validated[config.ReportSettings]) *Handler {
	return &Handler{
		store:   store,
		reports: reports,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": StatusHealthy})
}

func (h *Handler) progress(c *gin.Context) {
	respBuilder := newResponseBuilder()

	filter, err := parseProgressFilter(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, respBuilder.BuildErrorResponse(
			ErrorCodeValidationFailed,
			MessageInvalidFilter,
			err.Error(),
		))
		return
	}

	reportSettings, err := h.reports.Get()
	if err != nil {
		abortMisconfigured(c, err)
		return
	}

	reports, err := h.store.ProgressReports(c.Request.Context(), filter)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, respBuilder.BuildProgressResponse(reports, reportSettings.MaxRows))
}

func (h *Handler) createTeam(c *gin.Context) {
	var req createTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	team, err := h.store.CreateTeam(c.Request.Context(), req.Name)
	if err != nil {
		h.storeError(c, err)
		return
	}
	utils.Logger.Info("Team created", zap.Int64(utils.FieldTeamID, team.ID))
	c.JSON(http.StatusCreated, newResponseBuilder().BuildEntityResponse(team))
}

func (h *Handler) addMember(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, newResponseBuilder().BuildErrorResponse(
			ErrorCodeValidationFailed,
			MessageInvalidRequestBody,
			"team id must be an integer",
		))
		return
	}
	var req addMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.store.AddMember(c.Request.Context(), teamID, req.UserID); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "teamId": teamID, "userId": req.UserID})
}

func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.store.CreateTask(c.Request.Context(), report.Task{
		TeamID:     req.TeamID,
		AssigneeID: req.AssigneeID,
		Title:      req.Title,
		Status:     report.TaskStatus(req.Status),
	})
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newResponseBuilder().BuildEntityResponse(task))
}

// storeError maps persistence failures to responses. Only ErrNotFound is interpreted.
func (h *Handler) storeError(c *gin.Context, err error) {
	respBuilder := newResponseBuilder()
	if errors.Is(err, report.ErrNotFound) {
		c.JSON(http.StatusNotFound, respBuilder.BuildErrorResponse(ErrorCodeNotFound, MessageNotFound, err.Error()))
		return
	}
	utils.Logger.Error("Store operation failed",
		zap.String(utils.FieldPath, c.FullPath()),
		zap.String(utils.FieldRequestID, c.GetString(ctxRequestID)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, respBuilder.BuildErrorResponse(ErrorCodeInternal, MessageInternal, nil))
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.Logger.Debug("Invalid request body", zap.String(utils.FieldPath, c.FullPath()), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, newResponseBuilder().BuildErrorResponse(
			ErrorCodeInvalidRequestBody,
			MessageInvalidRequestBody,
			err.Error(),
		))
		return false
	}
	return true
}

func parseProgressFilter(c *gin.Context) (report.ProgressFilter, error) {
	var filter report.ProgressFilter
	var err error
	if filter.TeamID, err = optionalInt(c, queryTeamID); err != nil {
		return filter, err
	}
	if filter.UserID, err = optionalInt(c, queryUserID); err != nil {
		return filter, err
	}
	return filter, nil
}

func optionalInt(c *gin.Context, key string) (*int64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New(key + " must be an integer")
	}
	return &v, nil
}

func abortMisconfigured(c *gin.Context, err error) {
	utils.Logger.Error("Request rejected by invalid settings", zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, newResponseBuilder().BuildErrorResponse(
		ErrorCodeConfiguration,
		MessageMisconfigured,
		err.Error(),
	))
}

// authMiddleware checks the bearer token against AuthSettings. The settings are
// validated by the first request that reaches it.
func authMiddleware(auth *settings.Validated[config.AuthSettings]) gin.HandlerFunc {
	return func(c *gin.Context) {
		authSettings, err := auth.Get()
		if err != nil {
			abortMisconfigured(c, err)
			return
		}
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(authSettings.APIToken)) != 1 {
			utils.Logger.Warn("Unauthorized access attempt",
				zap.String(utils.FieldPath, c.Request.URL.Path),
				zap.String(utils.FieldRequestID, c.GetString(ctxRequestID)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, newResponseBuilder().BuildErrorResponse(
				ErrorCodeUnauthorized,
				MessageInvalidToken,
				nil,
			))
			return
		}
		c.Next()
	}
}
