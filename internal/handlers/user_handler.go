package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	ucIdentity "github.com/BruksfildServices01/service-marketplace/internal/usecase/identity"
)

type UserHandler struct {
	getUser    *ucIdentity.GetUser
	update     *ucIdentity.UpdateProfile
	deleteUser *ucIdentity.DeleteUser
}

func NewUserHandler(
	getUser *ucIdentity.GetUser,
	update *ucIdentity.UpdateProfile,
	deleteUser *ucIdentity.DeleteUser,
) *UserHandler {
	return &UserHandler{
		getUser:    getUser,
		update:     update,
		deleteUser: deleteUser,
	}
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.getUser.Execute(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.getUser.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.update.Execute(c.Request.Context(), ucIdentity.UpdateProfileInput{
		Actor:    actor,
		UserID:   id,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUser.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
