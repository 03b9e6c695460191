package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/brettarda/brett-dev/internal/nav"
	"github.com/brettarda/brett-dev/internal/theme"
	"github.com/brettarda/brett-dev/internal/view"
)

// nodeRender adapts a gomponents node to gin's render interface.
type nodeRender struct {
	node g.Node
}

func (r nodeRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.node.Render(w)
}

func (r nodeRender) WriteContentType(w http.ResponseWriter) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
}

func html(c *gin.Context, status int, node g.Node) {
	c.Render(status, nodeRender{node: node})
}

// themeStore builds the per-request theme store: the preference cookie is its
// storage and the client hint its color-scheme signal. Callers must Close it.
func (s *Server) themeStore(c *gin.Context) (*theme.Store, *theme.Element, error) {
	root := &theme.Element{}
	st, err := theme.NewStore(theme.Options{
		Key:     s.cfg.ThemeStorageKey,
		Default: s.cfg.DefaultTheme(),
		Storage: theme.NewCookieStorage(c.Request, c.Writer, s.cfg.SecureCookies),
		Scheme:  theme.SchemeFromRequest(c.Request),
		Root:    root,
		Logger:  *logger(c),
	})
	if err != nil {
		return nil, nil, err
	}
	return st, root, nil
}

// newController mounts a header controller on a fresh viewport over the
// page's sections. The returned func unmounts it.
func newController() (*nav.Controller, *nav.PageDocument, func()) {
	doc := nav.NewPageDocument(nav.SectionIDs()...)
	ctrl := nav.NewController(&nav.Viewport{}, doc)
	return ctrl, doc, ctrl.Mount()
}

func (s *Server) handlePage(c *gin.Context) {
	st, root, err := s.themeStore(c)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	defer st.Close()

	ctrl, _, unmount := newController()
	defer unmount()
	if c.Query("menu") == "open" {
		ctrl.ToggleMenu()
	}

	html(c, http.StatusOK, view.Page(view.PageData{
		Site:       s.content.Current(),
		Root:       root,
		Resolved:   st.Resolved(),
		Preference: st.Preference(),
		Header:     view.HeaderState{Scrolled: ctrl.Scrolled(), MenuOpen: ctrl.MenuOpen()},
		Year:       s.now().Year(),
		ThemeKey:   s.cfg.ThemeStorageKey,
	}))
}

// handleHome is the logo action: close the menu and return to the top.
func (s *Server) handleHome(c *gin.Context) {
	ctrl, _, unmount := newController()
	defer unmount()
	ctrl.Home()
	c.Redirect(http.StatusSeeOther, "/")
}

// handleNav redirects to the section fragment. An unknown section is a
// no-op answered with 204 so the browser stays where it is.
func (s *Server) handleNav(c *gin.Context) {
	ctrl, doc, unmount := newController()
	defer unmount()

	if !ctrl.Navigate(c.Param("section")) {
		c.Status(http.StatusNoContent)
		return
	}
	section := doc.Target()
	s.record(c, "nav", func(ctx context.Context) error {
		return s.analytics.RecordNav(ctx, section)
	})
	c.Redirect(http.StatusSeeOther, "/#"+section)
}

type themeRequest struct {
	Theme string `form:"theme" json:"theme"`
}

type themeResponse struct {
	Preference theme.Preference `json:"preference"`
	Resolved   theme.Mode       `json:"resolved"`
}

func (s *Server) handleSetTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBind(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	p, err := theme.ParsePreference(req.Theme)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	s.applyTheme(c, func(st *theme.Store) error { return st.Set(p) })
}

func (s *Server) handleToggleTheme(c *gin.Context) {
	s.applyTheme(c, (*theme.Store).Toggle)
}

func (s *Server) applyTheme(c *gin.Context, change func(*theme.Store) error) {
	st, _, err := s.themeStore(c)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	defer st.Close()

	if err := change(st); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, theme.ErrInvalidPreference) {
			status = http.StatusBadRequest
		}
		s.fail(c, status, err)
		return
	}

	resp := themeResponse{Preference: st.Preference(), Resolved: st.Resolved()}
	s.record(c, "theme", func(ctx context.Context) error {
		return s.analytics.RecordTheme(ctx, string(resp.Preference), string(resp.Resolved))
	})

	if wantsJSON(c) {
		c.JSON(http.StatusOK, resp)
		return
	}
	c.Redirect(http.StatusSeeOther, backTo(c.Request))
}

// handleNotFound serves the résumé at the path the content names and a 404
// for everything else.
func (s *Server) handleNotFound(c *gin.Context) {
	resume := s.content.Current().Resume
	if c.Request.Method == http.MethodGet && c.Request.URL.Path == resume.Href {
		s.serveResume(c, resume.DownloadName)
		return
	}
	c.String(http.StatusNotFound, "404 page not found")
}

func (s *Server) serveResume(c *gin.Context, downloadName string) {
	info, err := os.Stat(s.cfg.ResumePath)
	if err != nil || info.IsDir() {
		logger(c).Warn().Err(err).Str("file", s.cfg.ResumePath).Msg("résumé not available")
		c.String(http.StatusNotFound, "résumé not available")
		return
	}
	c.FileAttachment(s.cfg.ResumePath, downloadName)
}

// record writes an analytics event in the background unless analytics is
// off or the client sent DNT.
func (s *Server) record(c *gin.Context, what string, fn func(ctx context.Context) error) {
	if s.analytics == nil || c.GetHeader("DNT") == "1" {
		return
	}
	s.analytics.Go(what, fn)
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	ev := logger(c).Warn()
	if status >= http.StatusInternalServerError {
		ev = logger(c).Error()
	}
	ev.Err(err).Int("status", status).Msg("request failed")

	if wantsJSON(c) {
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Abort()
	c.String(status, http.StatusText(status)+": "+err.Error())
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// backTo is where a form post returns to: the referring page when it is on
// this site, otherwise the home page.
func backTo(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != r.Host) {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	out := u.Path
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		out += "#" + u.Fragment
	}
	return out
}
