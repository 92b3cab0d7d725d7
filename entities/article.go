package entities

import "time"

type Article struct {
	ArticleID uint      `gorm:"primaryKey" json:"article_id"`
	Title     string    `json:"title"`
	SourceURL string    `json:"source_url"`
	Tags      string    `json:"tags"`
	AuthorID  string    `gorm:"index" json:"author_id"`
	CreatedAt time.Time
}

type ArticleChunk struct {
	ChunkID   uint      `gorm:"primaryKey" json:"chunk_id"`
	ArticleID uint      `gorm:"index" json:"article_id"`
	Ord       int       `json:"ord"`
	Text      string    `json:"text"`
	CreatedAt time.Time
}
