package handlers

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/pkg/api/errors"
	"github.com/cliptokk/api/pkg/models"
	"github.com/cliptokk/api/pkg/phone"
	"github.com/cliptokk/api/pkg/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const maxAvatarSize = 2 << 20 // 2 MiB

var avatarContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	db        *ent.Client
	store     storage.Store
	validator *validator.Validate
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(db *ent.Client, store storage.Store) *ProfileHandler {
	return &ProfileHandler{
		db:        db,
		store:     store,
		validator: validator.New(),
	}
}

// Update godoc
// @Summary Update profile
// @Description Update pseudo, TikTok handle or payout phone
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.UserInfo
// @Failure 400 {object} models.ErrorResponse "Invalid phone number"
// @Security BearerAuth
// @Router /profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	builder := h.db.User.UpdateOneID(userID)
	if req.Pseudo != nil {
		builder = builder.SetPseudo(*req.Pseudo)
	}
	if req.TiktokUsername != nil {
		handle := strings.TrimPrefix(*req.TiktokUsername, "@")
		builder = builder.SetTiktokUsername(handle)
	}
	if req.PayoutPhone != nil {
		normalized, err := phone.NormalizePayoutPhone(*req.PayoutPhone)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_phone",
				Message: err.Error(),
			})
		}
		builder = builder.SetPayoutPhone(normalized)
	}

	u, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "pseudo_taken",
				Message: "This pseudo is already in use",
			})
		}
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "user")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toUserInfo(u))
}

// UploadAvatar godoc
// @Summary Upload avatar
// @Description Upload a profile picture (jpeg, png or webp, max 2 MiB)
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image file"
// @Success 200 {object} models.UserInfo
// @Failure 400 {object} models.ErrorResponse "Missing file or unsupported type"
// @Security BearerAuth
// @Router /profile/avatar [post]
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_file",
			Message: "An avatar file is required",
		})
	}
	if fileHeader.Size > maxAvatarSize {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "file_too_large",
			Message: "Avatar must be 2 MiB or smaller",
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, supported := avatarContentTypes[ext]
	if !supported {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unsupported_type",
			Message: "Avatar must be a jpeg, png or webp image",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.InternalError(c, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxAvatarSize+1))
	if err != nil {
		return errors.InternalError(c, err)
	}
	if len(data) > maxAvatarSize {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "file_too_large",
			Message: "Avatar must be 2 MiB or smaller",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	url, err := h.store.Put(ctx, storage.AvatarKey(userID, ext), data, contentType)
	if err != nil {
		return errors.InternalError(c, err)
	}

	u, err := h.db.User.UpdateOneID(userID).
		SetAvatarURL(url).
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toUserInfo(u))
}
