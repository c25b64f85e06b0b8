package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agron-app/agron/internal/catalog"
	"github.com/agron-app/agron/internal/domain/models"
)

// languageFromQuery resolves the lang query parameter to a supported locale,
// defaulting to the application default for a missing or unknown code.
func languageFromQuery(c *gin.Context) models.Language {
	lang := models.Language(c.Query("lang"))
	if !lang.IsValid() {
		return models.DefaultLanguage
	}
	return lang
}

// CatalogHandler serves the static selection options and UI strings.
type CatalogHandler struct{}

// NewCatalogHandler constructs the HTTP handler adapter.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Languages lists the selectable locales.
func (h *CatalogHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": catalog.Languages})
}

type labeledOption struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Acres string `json:"acres,omitempty"`
}

// Crops lists crop options with labels resolved to the requested language.
func (h *CatalogHandler) Crops(c *gin.Context) {
	lang := languageFromQuery(c)

	options := make([]labeledOption, 0, len(catalog.Crops))
	for _, opt := range catalog.Crops {
		options = append(options, labeledOption{
			ID:    string(opt.ID),
			Icon:  opt.Icon,
			Label: opt.Labels.In(lang),
		})
	}
	c.JSON(http.StatusOK, gin.H{"crops": options})
}

// LandSizes lists land options with labels resolved to the requested
// language.
func (h *CatalogHandler) LandSizes(c *gin.Context) {
	lang := languageFromQuery(c)

	options := make([]labeledOption, 0, len(catalog.LandSizes))
	for _, opt := range catalog.LandSizes {
		options = append(options, labeledOption{
			ID:    string(opt.ID),
			Icon:  opt.Icon,
			Label: opt.Labels.In(lang),
			Acres: opt.Acres,
		})
	}
	c.JSON(http.StatusOK, gin.H{"landSizes": options})
}

// UIText returns the interface strings for the requested language.
func (h *CatalogHandler) UIText(c *gin.Context) {
	lang := languageFromQuery(c)

	strings := make(map[string]string, len(catalog.UIText))
	for key, table := range catalog.UIText {
		strings[key] = table.In(lang)
	}
	c.JSON(http.StatusOK, gin.H{"text": strings})
}
