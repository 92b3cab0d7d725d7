package repositoryImp

import (
	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/community/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ArticleRepository { return &repo{db} }

func (r *repo) CreateArticle(a *entities.Article) error          { return r.db.Create(a).Error }
func (r *repo) BulkInsertChunks(cs []entities.ArticleChunk) error { return r.db.Create(&cs).Error }
func (r *repo) ListArticles() ([]entities.Article, error) {
	var as []entities.Article
	return as, r.db.Order("article_id DESC").Find(&as).Error
}
func (r *repo) AllChunks() ([]entities.ArticleChunk, error) {
	var cs []entities.ArticleChunk
	return cs, r.db.Find(&cs).Error
}
func (r *repo) ArticlesByIDs(ids []uint) (map[uint]entities.Article, error) {
	if len(ids) == 0 { return map[uint]entities.Article{}, nil }
	var as []entities.Article
	if err := r.db.Where("article_id IN ?", ids).Find(&as).Error; err != nil { return nil, err }
	m := make(map[uint]entities.Article, len(as))
	for i := range as { m[as[i].ArticleID] = as[i] }
	return m, nil
}
