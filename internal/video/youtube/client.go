package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/barbian-academy/backend/internal/domain"
	"go.uber.org/zap"
)

const (
	// upstream search page size, wider than the response limit so the
	// relevance filter has material to discard
	searchPageSize = 10

	descriptionLimit = 200
)

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelTitle string `json:"channelTitle"`
	} `json:"snippet"`
}

type searchResponse struct {
	PageInfo struct {
		TotalResults int `json:"totalResults"`
	} `json:"pageInfo"`
	Items []searchItem `json:"items"`
}

type videoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelTitle string `json:"channelTitle"`
		Thumbnails   struct {
			Medium struct {
				URL string `json:"url"`
			} `json:"medium"`
			High struct {
				URL string `json:"url"`
			} `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

type videosResponse struct {
	Items []videoItem `json:"items"`
}

// Client queries the YouTube Data API v3 for lesson videos. Implements
// domain.VideoSearcher
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(apiKey, baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

var nonWordChars = regexp.MustCompile(`[^\w\s]`)
var multiSpace = regexp.MustCompile(`\s+`)

// buildSearchQuery strip punctuation from the title and append barbering
// context so generic titles still land in the right corner of YouTube
func buildSearchQuery(lessonTitle string) string {
	clean := strings.ToLower(lessonTitle)
	clean = nonWordChars.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(multiSpace.ReplaceAllString(clean, " "))
	return clean + " barber tutorial barbería"
}

// Search runs a filtered search followed by a details lookup for durations.
// Results that fail the relevance filter are only served when nothing
// passes it, flagged accordingly
func (c *Client) Search(ctx context.Context, lessonTitle string, maxResults int) (*domain.SearchResult, error) {
	query := buildSearchQuery(lessonTitle)
	terms := searchTerms(lessonTitle)

	c.logger.Debug("Searching lesson videos",
		zap.String("lesson.title", lessonTitle),
		zap.String("search.query", query))

	var searchData searchResponse
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", fmt.Sprintf("%d", searchPageSize))
	params.Set("order", "relevance")
	params.Set("videoDefinition", "any")
	params.Set("videoEmbeddable", "true")
	params.Set("safeSearch", "strict")
	params.Set("regionCode", "US")
	params.Set("relevanceLanguage", "es")
	if err := c.get(ctx, "/search", params, &searchData); err != nil {
		return nil, err
	}

	if len(searchData.Items) == 0 {
		return &domain.SearchResult{
			Videos:  []*domain.VideoCandidate{},
			Message: "No videos found for this lesson",
		}, nil
	}

	relevant := make(map[string]bool)
	var picked []searchItem
	for _, item := range searchData.Items {
		if isRelevant(item, terms) {
			relevant[item.ID.VideoID] = true
			picked = append(picked, item)
		}
	}
	if len(picked) == 0 {
		picked = searchData.Items
	}
	if len(picked) > maxResults {
		picked = picked[:maxResults]
	}

	ids := make([]string, 0, len(picked))
	for _, item := range picked {
		ids = append(ids, item.ID.VideoID)
	}

	var detailsData videosResponse
	params = url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("id", strings.Join(ids, ","))
	if err := c.get(ctx, "/videos", params, &detailsData); err != nil {
		return nil, err
	}

	videos := make([]*domain.VideoCandidate, 0, len(detailsData.Items))
	for _, item := range detailsData.Items {
		videos = append(videos, &domain.VideoCandidate{
			ID:          item.ID,
			Title:       item.Snippet.Title,
			Channel:     item.Snippet.ChannelTitle,
			Duration:    FormatDuration(item.ContentDetails.Duration),
			Thumbnail:   pickThumbnail(item),
			Description: truncate(item.Snippet.Description, descriptionLimit),
			Relevant:    relevant[item.ID],
		})
	}

	c.logger.Debug("Video search completed",
		zap.String("lesson.title", lessonTitle),
		zap.Int("video.count", len(videos)))

	return &domain.SearchResult{
		Videos:       videos,
		SearchQuery:  query,
		TotalResults: searchData.PageInfo.TotalResults,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api error: %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func pickThumbnail(item videoItem) string {
	if item.Snippet.Thumbnails.High.URL != "" {
		return item.Snippet.Thumbnails.High.URL
	}
	return item.Snippet.Thumbnails.Medium.URL
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
