package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/database"
	"github.com/camden-git/totenbilder/models"
	"github.com/camden-git/totenbilder/repository"
)

// TotenbildHandler serves the archive JSON API.
type TotenbildHandler struct {
	Repo   repository.TotenbildRepository
	URLs   models.ImageURLBuilder
	Logger *zap.Logger
	// Now supplies the server-local date for the "on this day" default.
	Now func() time.Time
}

// Search handles GET /api/search.
func (h *TotenbildHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseListingQuery(r)
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	result, err := h.Repo.Search(r.Context(), filter, page)
	if err != nil {
		h.writeRepoError(w, err, "search")
		return
	}
	h.URLs.Resolve(result.Data)
	writeJSON(w, http.StatusOK, result)
}

// Today handles GET /api/today.
func (h *TotenbildHandler) Today(w http.ResponseWriter, r *http.Request) {
	day, month, sort, err := parseTodayQuery(r, h.now())
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	records, err := h.Repo.DiedOn(r.Context(), day, month, sort)
	if err != nil {
		h.writeRepoError(w, err, "today")
		return
	}
	h.URLs.Resolve(records)
	writeJSON(w, http.StatusOK, models.ListResult{Data: records, Total: len(records)})
}

// GetByID handles GET /api/totenbilder/{nid}.
func (h *TotenbildHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	nid, err := strconv.ParseInt(chi.URLParam(r, "nid"), 10, 64)
	if err != nil || nid <= 0 {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Invalid nid")
		return
	}
	rec, err := h.Repo.GetByID(r.Context(), nid)
	if err != nil {
		h.writeRepoError(w, err, "get_by_id")
		return
	}
	h.writeRecord(w, rec)
}

// GetByAlias handles GET /api/totenbilder/alias/{alias}.
func (h *TotenbildHandler) GetByAlias(w http.ResponseWriter, r *http.Request) {
	alias := strings.TrimSpace(chi.URLParam(r, "alias"))
	if alias == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Missing alias")
		return
	}
	rec, err := h.Repo.GetByAlias(r.Context(), alias)
	if err != nil {
		h.writeRepoError(w, err, "get_by_alias")
		return
	}
	h.writeRecord(w, rec)
}

func (h *TotenbildHandler) writeRecord(w http.ResponseWriter, rec *models.Totenbild) {
	single := []models.Totenbild{*rec}
	h.URLs.Resolve(single)
	writeJSON(w, http.StatusOK, single[0])
}

func (h *TotenbildHandler) writeRepoError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		WriteAPIError(w, http.StatusServiceUnavailable, CodeDBNotConfigured, "")
	case errors.Is(err, repository.ErrNotFound):
		WriteAPIError(w, http.StatusNotFound, CodeNotFound, "Totenbild not found")
	default:
		h.Logger.Error("archive query failed", zap.String("op", op), zap.Error(err))
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "")
	}
}

func (h *TotenbildHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// optionalInt parses an optional integer query parameter.
func optionalInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return &v, nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// parseSearchFilter reads the listing criteria. Only the year fields can be malformed.
func parseSearchFilter(r *http.Request) (models.SearchFilter, error) {
	q := r.URL.Query()
	filter := models.SearchFilter{
		Name:     q.Get("name"),
		Location: q.Get("location"),
	}
	var err error
	if filter.BirthYear, err = optionalInt(r, "birthYear"); err != nil {
		return filter, err
	}
	if filter.DeathYear, err = optionalInt(r, "deathYear"); err != nil {
		return filter, err
	}
	return filter.Normalized(), nil
}

// parseListingQuery reads the search filter and page selection.
func parseListingQuery(r *http.Request) (models.SearchFilter, models.PageRequest, error) {
	filter, err := parseSearchFilter(r)
	if err != nil {
		return filter, models.PageRequest{}, err
	}
	page, err := optionalInt(r, "page")
	if err != nil {
		return filter, models.PageRequest{}, err
	}
	limit, err := optionalInt(r, "limit")
	if err != nil {
		return filter, models.PageRequest{}, err
	}
	return filter, models.NewPageRequest(intOrZero(page), intOrZero(limit)), nil
}

// parseTodayQuery reads day, month and ordering; missing day or month default
// to the given date.
func parseTodayQuery(r *http.Request, today time.Time) (day, month int, sort models.TodaySort, err error) {
	d, err := optionalInt(r, "day")
	if err != nil {
		return 0, 0, sort, err
	}
	m, err := optionalInt(r, "month")
	if err != nil {
		return 0, 0, sort, err
	}
	day, month = today.Day(), int(today.Month())
	if d != nil {
		day = *d
	}
	if m != nil {
		month = *m
	}
	if day < 1 || day > 31 {
		return 0, 0, sort, fmt.Errorf("day out of range: %d", day)
	}
	if month < 1 || month > 12 {
		return 0, 0, sort, fmt.Errorf("month out of range: %d", month)
	}

	q := r.URL.Query()
	sort, err = models.ParseTodaySort(q.Get("sort"), q.Get("order"))
	return day, month, sort, err
}
