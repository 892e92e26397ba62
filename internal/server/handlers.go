package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/okabe/verbbook/internal/config"
	"github.com/okabe/verbbook/internal/verbs"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Handler serves the verb dictionary API. It holds no mutable state;
// all durable state lives in the repository.
type Handler struct {
	cfg  *config.Config
	repo verbs.Repository
}

// NewHandler creates a new Handler.
func NewHandler(cfg *config.Config, repo verbs.Repository) *Handler {
	return &Handler{cfg: cfg, repo: repo}
}

// requireAdmin rejects requests whose Admin-Key header does not match
// the configured secret. An unset secret denies everything.
func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.cfg.Admin.Secret == "" || c.Request().Header.Get("Admin-Key") != h.cfg.Admin.Secret {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return next(c)
	}
}

type searchResponse struct {
	Data  []verbs.Entry `json:"data"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// Search returns a filtered, paginated listing. With export=true the
// page window is disabled and the full filtered set is returned.
func (h *Handler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	page := intParam(c, "page", 1)
	isExport := c.QueryParam("export") == "true"

	limit := intParam(c, "limit", defaultPageSize)
	if !isExport && limit > maxPageSize {
		limit = maxPageSize
	}

	query := verbs.SearchQuery{
		Text:      q,
		Mode:      matchMode(c.QueryParam("mode")),
		Limit:     limit,
		Offset:    (page - 1) * limit,
		Unlimited: isExport,
	}
	if isExport {
		query.Offset = 0
	}

	entries, total, err := h.repo.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchResponse{
		Data:  entries,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

type verifyRequest struct {
	Password string `json:"password"`
}

// Verify checks a candidate secret. It fails closed when no secret is
// configured server-side.
func (h *Handler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if h.cfg.Admin.Secret == "" || req.Password != h.cfg.Admin.Secret {
		return c.JSON(http.StatusUnauthorized, map[string]bool{"success": false})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

type batchAddRequest struct {
	Rows []verbs.Entry `json:"rows"`
	Mode string        `json:"mode"`
}

// BatchAdd inserts a batch of entries, skipping or overwriting
// existing rows with the same base word depending on mode. The added
// count reflects statements submitted, not rows changed.
func (h *Handler) BatchAdd(c echo.Context) error {
	var req batchAddRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	mode := verbs.InsertSkip
	if req.Mode == string(verbs.InsertOverwrite) {
		mode = verbs.InsertOverwrite
	}

	added, err := h.repo.BatchInsert(c.Request().Context(), req.Rows, mode)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "added": added})
}

// Update overwrites a full row by ID. A nonexistent ID still succeeds.
func (h *Handler) Update(c echo.Context) error {
	var entry verbs.Entry
	if err := c.Bind(&entry); err != nil {
		return err
	}

	if err := h.repo.Update(c.Request().Context(), entry); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

type deleteRequest struct {
	ID int64 `json:"id"`
}

// Delete removes a single row by ID. A nonexistent ID still succeeds.
func (h *Handler) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.repo.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

type batchDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// BatchDelete removes all rows matching the given IDs in one statement.
func (h *Handler) BatchDelete(c echo.Context) error {
	var req batchDeleteRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.repo.DeleteAll(c.Request().Context(), req.IDs); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

type configResponse struct {
	BatchSize      *int  `json:"BATCH_SIZE,omitempty"`
	MobilePageSize *int  `json:"MOBILE_PAGE_SIZE,omitempty"`
	MobileOptions  []int `json:"MOBILE_OPTIONS,omitempty"`
	PCPageSize     *int  `json:"PC_PAGE_SIZE,omitempty"`
	PCOptions      []int `json:"PC_OPTIONS,omitempty"`
}

// Config exposes operator-configured UI values. Absent or unparseable
// values are omitted from the response.
func (h *Handler) Config(c echo.Context) error {
	ui := h.cfg.UI
	return c.JSON(http.StatusOK, configResponse{
		BatchSize:      config.Int(ui.BatchSize),
		MobilePageSize: config.Int(ui.MobilePageSize),
		MobileOptions:  config.IntList(ui.MobileOptions),
		PCPageSize:     config.Int(ui.PCPageSize),
		PCOptions:      config.IntList(ui.PCOptions),
	})
}

// intParam reads an integer query parameter, coercing absent or
// non-positive garbage to the default.
func intParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func matchMode(raw string) verbs.MatchMode {
	if raw == string(verbs.MatchExact) {
		return verbs.MatchExact
	}
	return verbs.MatchFuzzy
}
