package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/models"
	"github.com/camden-git/totenbilder/repository"
	"github.com/camden-git/totenbilder/web"
)

// HomePageLimit is the page size of the HTML archive listing.
const HomePageLimit = 20

// pageData is the view model shared by all page templates.
type pageData struct {
	Demo  bool
	Error string

	Filter      models.SearchFilter
	Result      models.ListResult
	NextPageURL string

	DateLabel  string
	Day, Month int
	Sort       models.TodaySort
	Records    []models.Totenbild

	Person *models.Totenbild

	Username string
	User     models.SessionUser
}

// PageHandler renders the public HTML pages.
type PageHandler struct {
	Repo     *repository.FallbackTotenbildRepository
	URLs     models.ImageURLBuilder
	Renderer *web.Renderer
	Logger   *zap.Logger
	Now      func() time.Time
}

func (h *PageHandler) render(w http.ResponseWriter, status int, page string, data pageData) {
	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, page, data); err != nil {
		h.Logger.Error("failed to render page", zap.String("page", page), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Home renders the search form and one page of results.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSearchFilter(r)
	if err != nil {
		h.render(w, http.StatusBadRequest, "home", pageData{Filter: filter, Error: "Ungültige Jahreszahl."})
		return
	}
	pageNum, err := optionalInt(r, "page")
	if err != nil {
		h.render(w, http.StatusBadRequest, "home", pageData{Filter: filter, Error: "Ungültige Seitenzahl."})
		return
	}
	page := models.NewPageRequest(intOrZero(pageNum), HomePageLimit)

	result, demo, err := h.Repo.Search(r.Context(), filter, page)
	if err != nil {
		h.Logger.Error("archive listing failed", zap.Error(err))
		h.render(w, http.StatusInternalServerError, "home", pageData{Filter: filter, Error: "Die Einträge konnten nicht geladen werden."})
		return
	}
	h.URLs.Resolve(result.Data)

	data := pageData{Demo: demo, Filter: filter, Result: result}
	if result.HasMore(page) {
		data.NextPageURL = nextPageURL(r.URL.Query(), page.Page+1)
	}
	h.render(w, http.StatusOK, "home", data)
}

func nextPageURL(q url.Values, page int) string {
	next := url.Values{}
	for k, v := range q {
		next[k] = v
	}
	next.Set("page", strconv.Itoa(page))
	return "/?" + next.Encode()
}

// Today renders everyone who died on this calendar day.
func (h *PageHandler) Today(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}
	day, month, sort, err := parseTodayQuery(r, now)
	if err != nil {
		h.render(w, http.StatusBadRequest, "today", pageData{Error: "Ungültiges Datum oder ungültige Sortierung."})
		return
	}

	records, demo, err := h.Repo.DiedOn(r.Context(), day, month, sort)
	data := pageData{
		Demo:      demo,
		Day:       day,
		Month:     month,
		Sort:      sort,
		DateLabel: fmt.Sprintf("%02d.%02d.", day, month),
	}
	if err != nil {
		h.Logger.Error("today listing failed", zap.Error(err))
		data.Error = "Die Einträge konnten nicht geladen werden."
		h.render(w, http.StatusInternalServerError, "today", data)
		return
	}
	h.URLs.Resolve(records)
	data.Records = records
	h.render(w, http.StatusOK, "today", data)
}

// Person renders /person/{nid}.
func (h *PageHandler) Person(w http.ResponseWriter, r *http.Request) {
	nid, err := strconv.ParseInt(chi.URLParam(r, "nid"), 10, 64)
	if err != nil {
		h.render(w, http.StatusNotFound, "notfound", pageData{})
		return
	}
	rec, err := h.Repo.GetByID(r.Context(), nid)
	h.renderPerson(w, rec, err)
}

// Alias renders /totenbild/{alias}.
func (h *PageHandler) Alias(w http.ResponseWriter, r *http.Request) {
	alias := strings.TrimSpace(chi.URLParam(r, "alias"))
	rec, err := h.Repo.GetByAlias(r.Context(), alias)
	h.renderPerson(w, rec, err)
}

func (h *PageHandler) renderPerson(w http.ResponseWriter, rec *models.Totenbild, err error) {
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.Logger.Warn("person lookup failed", zap.Error(err))
		}
		h.render(w, http.StatusNotFound, "notfound", pageData{})
		return
	}
	records := []models.Totenbild{*rec}
	h.URLs.Resolve(records)
	h.render(w, http.StatusOK, "person", pageData{Person: &records[0]})
}

// Static renders a page without data, such as the legal notice.
func (h *PageHandler) Static(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, http.StatusOK, page, pageData{})
	}
}
