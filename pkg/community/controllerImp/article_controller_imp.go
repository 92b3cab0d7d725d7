package controllerImp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"agritrust/pkg/community/controller"
	"agritrust/pkg/community/service"
)

type ArticleCtrl struct {
	s        service.ArticleService
	allow    map[string]bool
	maxBytes int
}

// New builds the controller; allowedDomains is a comma-separated host list
// gating URL ingestion.
func New(s service.ArticleService, allowedDomains string, maxBytes int) controller.ArticleController {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(h)
		if h != "" { allow[strings.ToLower(h)] = true }
	}
	if maxBytes <= 0 { maxBytes = 1500000 }
	return &ArticleCtrl{s: s, allow: allow, maxBytes: maxBytes}
}

type ingestReq struct {
	Title     string `json:"title"`
	Tags      string `json:"tags"`
	Text      string `json:"text"`
	SourceURL string `json:"source_url"`
}

func (h *ArticleCtrl) IngestText(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text is required"})
	}

	uid, _ := c.Get("uid").(string)
	a, chunks, err := h.s.Ingest(strings.TrimSpace(req.Title), strings.TrimSpace(req.Tags), req.Text, req.SourceURL, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"article": a, "chunks": chunks})
}

func (h *ArticleCtrl) IngestURL(c echo.Context) error {
	var body struct{ URL, Tags, Title string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"}) }
	host := strings.ToLower(u.Host)
	if !h.allow[host] { return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"}) }

	txt, title, err := fetchMainText(body.URL, h.maxBytes)
	if err != nil { return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()}) }
	if body.Title != "" { title = body.Title }

	uid, _ := c.Get("uid").(string)
	a, n, err := h.s.Ingest(title, body.Tags, txt, body.URL, uid)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, map[string]any{"article": a, "chunks": n})
}

func (h *ArticleCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" { return c.JSON(http.StatusBadRequest, map[string]string{"error": "q required"}) }

	chunks, err := h.s.Search(q, 6)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }

	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(chunks))
	for _, ch := range chunks {
		if _, ok := seen[ch.ArticleID]; !ok {
			seen[ch.ArticleID] = struct{}{}
			ids = append(ids, ch.ArticleID)
		}
	}
	meta, _ := h.s.ArticlesMeta(ids)

	type outChunk struct {
		ChunkID   uint   `json:"chunk_id"`
		ArticleID uint   `json:"article_id"`
		Ord       int    `json:"ord"`
		Text      string `json:"text"`
		Title     string `json:"title,omitempty"`
		SourceURL string `json:"source_url,omitempty"`
	}
	out := make([]outChunk, 0, len(chunks))
	for _, ch := range chunks {
		oc := outChunk{ChunkID: ch.ChunkID, ArticleID: ch.ArticleID, Ord: ch.Ord, Text: ch.Text}
		if a, ok := meta[ch.ArticleID]; ok {
			oc.Title = a.Title
			oc.SourceURL = a.SourceURL
		}
		out = append(out, oc)
	}
	return c.JSON(http.StatusOK, out)
}

func fetchMainText(u string, maxBytes int) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil { return "", "", err }
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) { return "", "", fmt.Errorf("page too large") }
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil { return "", "", err }
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	if strings.Contains(ct, "text/plain") {
		return string(b), guessTitleFromText(string(b)), nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil { return "", "", err }
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 { sel = doc.Selection }
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 { parts = append(parts, t) }
	})
	text := cleanWhitespace(strings.Join(parts, "\n"))
	return text, title, nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func guessTitleFromText(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 { line = line[:120] }
	return line
}
