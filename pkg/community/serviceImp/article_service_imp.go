package serviceImp

import (
	"sort"
	"strings"

	"agritrust/entities"
	"agritrust/pkg/community/repository"
	"agritrust/pkg/community/service"
)

type articleSvc struct{ r repository.ArticleRepository }

func New(r repository.ArticleRepository) service.ArticleService { return &articleSvc{r: r} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 { maxRunes = 1000 }
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r); count++
		if count >= maxRunes && r == '\n' { parts = append(parts, cur.String()); cur.Reset(); count = 0 }
	}
	if cur.Len() > 0 { parts = append(parts, cur.String()) }
	return parts
}

func (s *articleSvc) Ingest(title, tags, text, sourceURL, authorID string) (*entities.Article, int, error) {
	a := &entities.Article{Title: title, Tags: tags, SourceURL: sourceURL, AuthorID: authorID}
	if err := s.r.CreateArticle(a); err != nil { return nil, 0, err }

	chs := chunkText(text, 1000)
	if len(chs) == 0 { return a, 0, nil }

	rows := make([]entities.ArticleChunk, len(chs))
	for i := range chs {
		rows[i] = entities.ArticleChunk{ArticleID: a.ArticleID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil { return nil, 0, err }
	return a, len(rows), nil
}

// Search scores chunks by case-insensitive term hits and returns the top k.
func (s *articleSvc) Search(query string, k int) ([]entities.ArticleChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	terms := strings.Fields(strings.ToLower(q))
	type scored struct {
		ch entities.ArticleChunk
		sc int
	}
	list := make([]scored, 0, len(chunks))
	for _, ch := range chunks {
		low := strings.ToLower(ch.Text)
		score := 0
		for _, t := range terms {
			score += strings.Count(low, t)
		}
		if score > 0 {
			list = append(list, scored{ch: ch, sc: score})
		}
	}
	if len(list) == 0 {
		return nil, nil
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })

	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.ArticleChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *articleSvc) ArticlesMeta(ids []uint) (map[uint]entities.Article, error) {
	return s.r.ArticlesByIDs(ids)
}
