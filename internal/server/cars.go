package server

import (
	"errors"
	"net/http"

	"github.com/carinspectinator/car-service/internal/apierror"
	cardomain "github.com/carinspectinator/car-service/internal/car/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListCars(c *gin.Context) {
	cars := s.carSvc.List(c.Request.Context())
	c.JSON(http.StatusOK, cars)
}

func (s *Server) GetCarByID(c *gin.Context) {
	car, err := s.carSvc.Get(c.Request.Context(), c.Param("carId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

func (s *Server) CreateCar(c *gin.Context) {
	var car cardomain.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	created, err := s.carSvc.Create(c.Request.Context(), car)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) UpdateCar(c *gin.Context) {
	var car cardomain.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	updated, err := s.carSvc.Update(c.Request.Context(), c.Param("carId"), car)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) DeleteCar(c *gin.Context) {
	if err := s.carSvc.Delete(c.Request.Context(), c.Param("carId")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindError keeps field-level validation messages from the domain while
// collapsing raw JSON syntax errors into a generic bad request.
func bindError(err error) error {
	var fieldErr *cardomain.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr
	}
	return apierror.BadRequest("invalid request body")
}
