package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/catalog"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type CatalogHandler struct {
	catalog catalog.Catalog
}

func NewCatalogHandler(c catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
	}
}

// HandleListCompanies handles GET /companies
func (h *CatalogHandler) HandleListCompanies(c *fiber.Ctx) error {
	organizations := h.catalog.Organizations()

	companies := make([]models.CompanyResponse, 0, len(organizations))
	for _, org := range organizations {
		companies = append(companies, models.CompanyResponse{
			Name:  org,
			Roles: h.catalog.Roles(org),
		})
	}

	return c.JSON(fiber.Map{
		"companies": companies,
	})
}

// HandleListRoles handles GET /companies/:company/roles
func (h *CatalogHandler) HandleListRoles(c *fiber.Ctx) error {
	company, err := url.PathUnescape(c.Params("company"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid company name",
		})
	}

	roles := h.catalog.Roles(company)
	if len(roles) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Company not found",
		})
	}

	return c.JSON(models.CompanyResponse{
		Name:  company,
		Roles: roles,
	})
}
