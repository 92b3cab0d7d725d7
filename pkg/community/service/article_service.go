package service

import "agritrust/entities"

type ArticleService interface {
	// Ingest stores a sustainability article split into search chunks and
	// returns the article plus the chunk count.
	Ingest(title, tags, text, sourceURL, authorID string) (*entities.Article, int, error)
	Search(query string, k int) ([]entities.ArticleChunk, error)
	ArticlesMeta(ids []uint) (map[uint]entities.Article, error)
}
