package handlers

import (
	"github.com/labstack/echo/v4"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/RajoelinaAaron/api-travel-visas/docs"
	"github.com/RajoelinaAaron/api-travel-visas/middleware"
)

// Register wires all routes onto e. The /v1/admin group is guarded by the
// API-key middleware, which runs before any body handling.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)
	e.GET("/docs/*", echoswagger.WrapHandler)

	v1 := e.Group("/v1")
	v1.GET("/countries", h.ListCountries)
	v1.GET("/countries/:iso2", h.GetCountry)
	v1.GET("/countries/:iso2/guide", h.GetCountryGuide)
	v1.GET("/nationalities", h.ListNationalities)
	v1.GET("/requirements", h.GetRequirements)
	v1.GET("/entry-profiles/:id", h.GetEntryProfile)
	v1.GET("/entry-profiles/:id/documents", h.GetEntryDocuments)
	v1.GET("/entry-profiles/:id/travel-requirements", h.GetTravelRequirements)
	v1.GET("/entry-profiles/:id/health", h.GetHealthRequirements)

	admin := v1.Group("/admin", middleware.RequireAPIKey(h.Cfg.AdminAPIKey))
	admin.POST("/nationalities", h.UpsertNationality)
	admin.POST("/countries", h.UpsertCountry)
	admin.POST("/countries/:iso2/official-portal", h.UpsertOfficialPortal)
	admin.PUT("/entry-profiles", h.UpsertEntryProfile)
	admin.PUT("/entry-profiles/:id/documents", h.ReplaceEntryDocuments)
	admin.PUT("/entry-profiles/:id/travel-requirements", h.UpsertTravelRequirements)
	admin.PUT("/entry-profiles/:id/health", h.UpsertHealthRequirements)
	admin.PUT("/countries/:iso2/guide", h.UpsertCountryGuide)
}
