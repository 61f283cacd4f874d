package helpscout

// Upstream payload types. The Docs API is tolerant of shape drift in both
// directions: fields the adapter never reads are ignored, and fields the API
// omits decode to their zero values, which the rendering layer turns into
// neutral placeholders. A missing envelope key decodes to an empty page and
// flows through the normal "no results" path.

// PageInfo carries the pagination counters of a result envelope.
type PageInfo struct {
	Count int `json:"count"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// HasMorePages reports whether a follow-up call with the next page number
// would return further results.
func (p PageInfo) HasMorePages() bool {
	return p.Page < p.Pages
}

// normalize fills the counters the API left out, mirroring how absent values
// are interpreted: count falls back to the number of items on this page,
// page to the page that was requested, pages to a single page.
func (p *PageInfo) normalize(requestedPage, itemCount int) {
	if p.Count == 0 && itemCount > 0 {
		p.Count = itemCount
	}
	if p.Page == 0 {
		p.Page = requestedPage
	}
	if p.Pages == 0 {
		p.Pages = 1
	}
}

// SearchResult is one hit from the search endpoint.
type SearchResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Preview string `json:"preview"`
}

// SearchPage is a page of search hits.
type SearchPage struct {
	Items []SearchResult `json:"items"`
	PageInfo
}

// Article is the full single-article payload.
type Article struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	PublicURL string `json:"publicUrl"`
	UpdatedAt string `json:"updatedAt"`
	ViewCount int    `json:"viewCount"`
	Text      string `json:"text"`
}

// ArticleRef is the compact article entry returned when listing a
// collection's articles.
type ArticleRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PublicURL string `json:"publicUrl"`
}

// ArticleRefPage is a page of compact article entries.
type ArticleRefPage struct {
	Items []ArticleRef `json:"items"`
	PageInfo
}

// Collection is a top-level grouping of published articles.
type Collection struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	PublicURL             string `json:"publicUrl"`
	PublishedArticleCount int    `json:"publishedArticleCount"`
}

// CollectionPage is a page of collections.
type CollectionPage struct {
	Items []Collection `json:"items"`
	PageInfo
}

// Response envelopes. Result lists nest under a named key; the key's absence
// yields the zero page.
type searchEnvelope struct {
	Articles SearchPage `json:"articles"`
}

type articleEnvelope struct {
	Article *Article `json:"article"`
}

type collectionsEnvelope struct {
	Collections CollectionPage `json:"collections"`
}

type collectionArticlesEnvelope struct {
	Articles ArticleRefPage `json:"articles"`
}
