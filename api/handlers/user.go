package handlers

import (
	"net/http"

	"bizlink/services"

	"github.com/gin-gonic/gin"
)

// UserHandler - чтение профилей каталога пользователей
type UserHandler struct {
	Users *services.UserService
}

type UserInfo struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	Firstname string `json:"first_name"`
	Lastname  string `json:"last_name"`
	City      string `json:"city"`
}

// Get - обработчик GET /user/get/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.Users.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserInfo{
		ID:        user.ID,
		Nickname:  user.Nickname,
		Firstname: user.FirstName,
		Lastname:  user.LastName,
		City:      user.City,
	})
}
