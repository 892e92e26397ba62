package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/okabe/verbbook/internal/verbs"
)

// exportBOM is a UTF-8 byte-order marker so spreadsheet tools pick the
// right encoding when opening the download.
const exportBOM = "\uFEFF"

// Export serves the full filtered result set as delimiter-separated
// text. The delimiter comes from the caller and may be more than one
// character, so fields are joined rather than CSV-encoded.
func (h *Handler) Export(c echo.Context) error {
	delim := c.QueryParam("delim")
	if delim == "" {
		delim = ","
	}

	entries, _, err := h.repo.Search(c.Request().Context(), verbs.SearchQuery{
		Text:      c.QueryParam("q"),
		Mode:      matchMode(c.QueryParam("mode")),
		Unlimited: true,
	})
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		note := ""
		if e.Note != nil {
			note = *e.Note
		}
		lines = append(lines, strings.Join([]string{
			e.BaseWord, e.PastTense, e.PastParticiple, e.Definition, note,
		}, delim))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="verbs.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(exportBOM+strings.Join(lines, "\n")))
}
