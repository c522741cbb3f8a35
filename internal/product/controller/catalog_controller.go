package controller

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"catalog/internal/dto"
	apperrors "catalog/internal/errors"
	"catalog/internal/product/store"
	"catalog/internal/product/usecase"
	"catalog/internal/product/view"
	"catalog/internal/server/middleware"

	"go.uber.org/zap"
)

const ThemeCookie = "theme"

//go:embed templates/*.html
var templateFS embed.FS

var catalogTemplate = template.Must(template.ParseFS(templateFS, "templates/catalog.html"))

type BrowseUseCase interface {
	Browse(ctx context.Context, state view.State) *usecase.BrowseResult
}

type StatusReader interface {
	Snapshot() store.Snapshot
}

type CatalogController struct {
	useCase     BrowseUseCase
	status      StatusReader
	defaultDark bool
	logger      *zap.Logger
}

func NewCatalogController(useCase BrowseUseCase, status StatusReader, defaultDark bool, logger *zap.Logger) *CatalogController {
	return &CatalogController{
		useCase:     useCase,
		status:      status,
		defaultDark: defaultDark,
		logger:      logger,
	}
}

// HandleIndex renders the catalog page. Bad query values fall back to their
// defaults rather than failing the page.
func (c *CatalogController) HandleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	state := view.NewState().WithSearchTerm(query.Get("q"))
	if opt, ok := view.ParseSortOption(query.Get("sort")); ok {
		state = state.WithSortOption(opt)
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		state = state.WithPage(page)
	}

	result := c.useCase.Browse(r.Context(), state)
	data := c.newPageData(r, result)

	var buf bytes.Buffer
	if err := catalogTemplate.Execute(&buf, data); err != nil {
		err = apperrors.NewInternalError("rendering catalog page", err)
		c.logger.Error("render failed", zap.String("traceId", middleware.RequestIDFromContext(r.Context())), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// HandleListProducts serves the same pipeline output as JSON.
func (c *CatalogController) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	traceID := middleware.RequestIDFromContext(r.Context())
	logger := c.logger.With(zap.String("traceId", traceID))

	state, err := c.parseBrowseQuery(r.URL.Query())
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("invalid browse query", zap.String("query", r.URL.RawQuery))
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	result := c.useCase.Browse(r.Context(), state)

	if err := result.Err(); err != nil {
		if fe, ok := apperrors.IsFetchError(err); ok {
			c.writeError(w, traceID, http.StatusBadGateway, "FETCH_FAILED", fe.Error())
			return
		}
		if ue, ok := apperrors.IsUnavailableError(err); ok {
			w.Header().Set("Retry-After", "1")
			c.writeError(w, traceID, http.StatusServiceUnavailable, "NOT_READY", ue.Error())
			return
		}
		logger.Error("unexpected browse error", zap.Error(err))
		c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	c.writeJSON(w, http.StatusOK, usecase.ToResponse(result))
}

// HandleToggleTheme flips the theme cookie for this browser session and
// sends the user back where they were.
func (c *CatalogController) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	dark := !c.isDark(r)

	value := "light"
	if dark {
		value = "dark"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, safeRedirect(r.FormValue("redirect")), http.StatusSeeOther)
}

func (c *CatalogController) HandleHealth(w http.ResponseWriter, r *http.Request) {
	snap := c.status.Snapshot()
	c.writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status:   string(snap.Status),
		Products: len(snap.Products),
	})
}

func (c *CatalogController) parseBrowseQuery(query url.Values) (view.State, error) {
	var details []apperrors.ValidationDetail

	state := view.NewState().WithSearchTerm(query.Get("q"))

	opt, ok := view.ParseSortOption(query.Get("sort"))
	if !ok {
		details = append(details, apperrors.ValidationDetail{
			Field:   "sort",
			Message: "sort must be one of default, price, priceDesc, rating",
		})
	}
	state = state.WithSortOption(opt)

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "page",
				Message: "page must be a positive integer",
			})
		} else {
			state = state.WithPage(page)
		}
	}

	if len(details) > 0 {
		return state, apperrors.NewValidationError("validation failed", details...)
	}
	return state, nil
}

func (c *CatalogController) isDark(r *http.Request) bool {
	cookie, err := r.Cookie(ThemeCookie)
	if err != nil {
		return c.defaultDark
	}
	return cookie.Value == "dark"
}

type sortOptionData struct {
	Value    string
	Label    string
	Selected bool
}

type pageLink struct {
	Number  int
	Href    string
	Current bool
}

type paginationData struct {
	PrevHref     string
	NextHref     string
	PrevDisabled bool
	NextDisabled bool
	Pages        []pageLink
}

type pageData struct {
	Dark        bool
	Self        string
	SearchTerm  string
	SortOptions []sortOptionData
	Loading     bool
	Error       string
	Products    []dto.ProductDTO
	Pagination  *paginationData
}

func (c *CatalogController) newPageData(r *http.Request, result *usecase.BrowseResult) pageData {
	state := result.State
	data := pageData{
		Dark:       c.isDark(r),
		Self:       r.URL.RequestURI(),
		SearchTerm: state.SearchTerm(),
		Loading:    result.Status == store.StatusIdle || result.Status == store.StatusLoading,
	}

	for _, opt := range view.SortOptions {
		data.SortOptions = append(data.SortOptions, sortOptionData{
			Value:    string(opt),
			Label:    opt.Label(),
			Selected: opt == state.SortOption(),
		})
	}

	if result.Status == store.StatusError {
		data.Error = result.Error
		return data
	}
	if !result.Ready() {
		return data
	}

	data.Products = make([]dto.ProductDTO, 0, len(result.Page.Products))
	for _, p := range result.Page.Products {
		data.Products = append(data.Products, usecase.ToProductDTO(p))
	}

	if ctl := result.Controls; ctl.Visible {
		p := &paginationData{
			PrevHref:     pageHref(state, ctl.Prev),
			NextHref:     pageHref(state, ctl.Next),
			PrevDisabled: ctl.PrevDisabled,
			NextDisabled: ctl.NextDisabled,
		}
		for _, n := range ctl.Pages {
			p.Pages = append(p.Pages, pageLink{
				Number:  n,
				Href:    pageHref(state, n),
				Current: n == ctl.Current,
			})
		}
		data.Pagination = p
	}

	return data
}

// pageHref keeps the search term and sort option so that paging never
// resets them.
func pageHref(state view.State, page int) string {
	v := url.Values{}
	if term := state.SearchTerm(); term != "" {
		v.Set("q", term)
	}
	if opt := state.SortOption(); opt != view.SortDefault {
		v.Set("sort", string(opt))
	}
	v.Set("page", strconv.Itoa(page))
	return "/?" + v.Encode()
}

func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

type validationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *CatalogController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *CatalogController) writeError(w http.ResponseWriter, traceID string, status int, code, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *CatalogController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
