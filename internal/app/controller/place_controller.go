package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chocolog/chocolog-backend/internal/app/service"
	apperrors "github.com/chocolog/chocolog-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type PlaceController struct {
	placeService service.PlaceService
}

func NewPlaceController(placeService service.PlaceService) *PlaceController {
	return &PlaceController{placeService: placeService}
}

// GetPlace handles GET /places/:id
func (ctrl *PlaceController) GetPlace(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid place id")
		return
	}

	place, err := ctrl.placeService.GetPlace(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			apperrors.RespondNotFound(c, "place not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"place": place})
}
