package serviceImp

import (
	"strings"
	"testing"

	"agritrust/entities"
)

type fakeRepo struct {
	articles []entities.Article
	chunks   []entities.ArticleChunk
	nextID   uint
}

func (f *fakeRepo) CreateArticle(a *entities.Article) error {
	f.nextID++
	a.ArticleID = f.nextID
	f.articles = append(f.articles, *a)
	return nil
}

func (f *fakeRepo) BulkInsertChunks(cs []entities.ArticleChunk) error {
	f.chunks = append(f.chunks, cs...)
	return nil
}

func (f *fakeRepo) ListArticles() ([]entities.Article, error) { return f.articles, nil }

func (f *fakeRepo) AllChunks() ([]entities.ArticleChunk, error) { return f.chunks, nil }

func (f *fakeRepo) ArticlesByIDs(ids []uint) (map[uint]entities.Article, error) {
	out := map[uint]entities.Article{}
	for _, a := range f.articles {
		for _, id := range ids {
			if a.ArticleID == id {
				out[id] = a
			}
		}
	}
	return out, nil
}

func TestChunkText_SplitsAtNewlineAfterLimit(t *testing.T) {
	line := strings.Repeat("a", 99) + "\n"
	text := strings.Repeat(line, 25) // 2500 runes

	chunks := chunkText(text, 1000)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	for i, c := range chunks[:len(chunks)-1] {
		if !strings.HasSuffix(c, "\n") {
			t.Errorf("chunk %d does not end at a line break", i)
		}
	}
	if got := strings.Join(chunks, ""); got != text {
		t.Fatal("chunks must reassemble to the original text")
	}
}

func TestChunkText_ShortText(t *testing.T) {
	chunks := chunkText("composting basics", 1000)
	if len(chunks) != 1 || chunks[0] != "composting basics" {
		t.Fatalf("got %v", chunks)
	}
	if got := chunkText("", 1000); len(got) != 0 {
		t.Fatalf("empty text produced %v", got)
	}
}

func TestIngestAndSearch(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)

	a, n, err := svc.Ingest("Composting 101", "soil,compost", "Compost improves soil.\nCompost needs air.\n", "", "f1")
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if a.ArticleID == 0 || n != 1 {
		t.Fatalf("article = %+v, chunks = %d", a, n)
	}
	if _, _, err := svc.Ingest("Crop Rotation", "", "Rotate crops to rest the soil.\n", "", "f1"); err != nil {
		t.Fatal(err)
	}

	hits, err := svc.Search("compost", 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 1 || hits[0].ArticleID != a.ArticleID {
		t.Fatalf("hits = %v", hits)
	}

	// both chunks mention soil; the one with more term hits ranks first
	hits, err = svc.Search("soil compost", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 || hits[0].ArticleID != a.ArticleID {
		t.Fatalf("ranking: %v", hits)
	}

	if hits, _ := svc.Search("  ", 5); hits != nil {
		t.Fatalf("blank query must return nothing, got %v", hits)
	}
	if hits, _ := svc.Search("hydroponics", 5); hits != nil {
		t.Fatalf("no-hit query must return nothing, got %v", hits)
	}
}

func TestSearch_TopKBound(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)
	for _, title := range []string{"Weeds I", "Weeds II", "Weeds III"} {
		if _, _, err := svc.Ingest(title, "", "pulling weeds by hand\n", "", "f1"); err != nil {
			t.Fatal(err)
		}
	}

	hits, err := svc.Search("weeds", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 {
		t.Fatalf("k=2 returned %d hits", len(hits))
	}
}
