// Package gin serves the documentation analyzer over HTTP: an HTML form
// for people and a JSON API for tools.
package gin

import (
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/fwojciec/docreview"
	"github.com/gin-gonic/gin"
)

// Server routes analysis requests to a ReviewService.
type Server struct {
	reviews docreview.ReviewService
	reviser docreview.Reviser
	logger  *slog.Logger
	limiter *ClientLimiter
	router  *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRateLimit limits analysis requests per client.
func WithRateLimit(limiter *ClientLimiter) Option {
	return func(s *Server) {
		s.limiter = limiter
	}
}

// WithReviser enables the "revise" option, which rewrites the analyzed
// page using its feedback.
func WithReviser(reviser docreview.Reviser) Option {
	return func(s *Server) {
		s.reviser = reviser
	}
}

// NewServer creates a Server. Call gin.SetMode before NewServer to
// select debug or release behavior.
func NewServer(reviews docreview.ReviewService, opts ...Option) *Server {
	s := &Server{
		reviews: reviews,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(recovery(s.logger), requestLogger(s.logger))
	r.SetHTMLTemplate(pages)

	r.GET("/", s.handleIndex)

	analyze := []gin.HandlerFunc{}
	if s.limiter != nil {
		analyze = append(analyze, s.limiter.Middleware())
	}
	r.POST("/analyze", append(analyze, s.handleAnalyzeForm)...)

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/analyze", append(analyze, s.handleAnalyzeJSON)...)
	}

	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// categoryOption is one checkbox on the form.
type categoryOption struct {
	Value   string
	Title   string
	Checked bool
}

// formData is the view model for the index page.
type formData struct {
	URL       string
	Error     string
	Options   []categoryOption
	CanRevise bool
	Revise    bool
}

// section is one category on the result page.
type section struct {
	Title    string
	Feedback *docreview.CategoryFeedback
}

// resultData is the view model for the result page.
type resultData struct {
	Result   *docreview.AnalysisResult
	Sections []section
	Revision revision
}

// revision is the outcome of an optional rewrite. A failed rewrite leaves
// Content empty and explains itself in Warning.
type revision struct {
	Content string `json:"revised_content,omitempty"`
	Warning string `json:"revision_warning,omitempty"`
}

func (s *Server) newFormData(url string, selected []docreview.Category, errMsg string) formData {
	all := docreview.AllCategories()
	if len(selected) == 0 {
		selected = all
	}
	options := make([]categoryOption, 0, len(all))
	for _, c := range all {
		options = append(options, categoryOption{
			Value:   string(c),
			Title:   c.Title(),
			Checked: slices.Contains(selected, c),
		})
	}
	return formData{URL: url, Error: errMsg, Options: options, CanRevise: s.reviser != nil}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", s.newFormData("", nil, ""))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAnalyzeForm(c *gin.Context) {
	rawURL := c.PostForm("url")
	revise := c.PostForm("revise") != ""

	categories, err := parseCategories(c.PostFormArray("categories"))
	if err != nil {
		data := s.newFormData(rawURL, nil, docreview.ErrorMessage(err))
		data.Revise = revise
		c.HTML(statusCode(err), "index", data)
		return
	}

	result, rev, err := s.review(c, rawURL, categories, revise)
	if err != nil {
		data := s.newFormData(rawURL, categories, docreview.ErrorMessage(err))
		data.Revise = revise
		c.HTML(statusCode(err), "index", data)
		return
	}

	sections := make([]section, 0, len(result.Analysis))
	for _, cat := range result.Categories() {
		sections = append(sections, section{Title: cat.Title(), Feedback: result.Analysis[cat]})
	}
	c.HTML(http.StatusOK, "result", resultData{Result: result, Sections: sections, Revision: rev})
}

// analyzeRequest is the JSON body of POST /api/analyze.
type analyzeRequest struct {
	URL        string   `json:"url"`
	Categories []string `json:"categories"`
	Revise     bool     `json:"revise"`
}

// analyzeResponse is the analysis plus any revision fields.
type analyzeResponse struct {
	*docreview.AnalysisResult
	revision
}

func (s *Server) handleAnalyzeJSON(c *gin.Context) {
	var body analyzeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	categories, err := parseCategories(body.Categories)
	if err != nil {
		c.JSON(statusCode(err), gin.H{"error": docreview.ErrorMessage(err)})
		return
	}

	result, rev, err := s.review(c, body.URL, categories, body.Revise)
	if err != nil {
		c.JSON(statusCode(err), gin.H{"error": docreview.ErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, analyzeResponse{AnalysisResult: result, revision: rev})
}

// review analyzes the page and, when asked and a reviser is configured,
// rewrites it. Revision failures never fail the request.
func (s *Server) review(c *gin.Context, rawURL string, categories []docreview.Category, revise bool) (*docreview.AnalysisResult, revision, error) {
	req, err := docreview.NewAnalysisRequest(rawURL, categories...)
	if err != nil {
		return nil, revision{}, err
	}
	ctx := c.Request.Context()

	if !revise || s.reviser == nil {
		result, err := s.reviews.Review(ctx, req)
		if err != nil {
			s.logger.Warn("analysis failed", "url", req.URL(), "err", err)
			return nil, revision{}, err
		}
		return result, revision{}, nil
	}

	result, doc, err := s.reviews.ReviewDocument(ctx, req)
	if err != nil {
		s.logger.Warn("analysis failed", "url", req.URL(), "err", err)
		return nil, revision{}, err
	}
	content, err := s.reviser.Revise(ctx, doc, result)
	if err != nil {
		s.logger.Warn("revision failed", "url", req.URL(), "err", err)
		return result, revision{Warning: "Could not generate revised content: " + docreview.ErrorMessage(err)}, nil
	}
	return result, revision{Content: content}, nil
}

func parseCategories(values []string) ([]docreview.Category, error) {
	categories := make([]docreview.Category, 0, len(values))
	for _, v := range values {
		cat, err := docreview.ParseCategory(v)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// statusCode maps an application error code to an HTTP status.
func statusCode(err error) int {
	switch docreview.ErrorCode(err) {
	case docreview.EINVALID:
		return http.StatusBadRequest
	case docreview.EEXTRACT:
		return http.StatusUnprocessableEntity
	case docreview.EPROVIDER, docreview.ETRANSIENT:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
