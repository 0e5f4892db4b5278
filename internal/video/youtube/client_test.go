package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestBuildSearchQuery(t *testing.T) {
	got := buildSearchQuery("Fade bajo (low fade): paso a paso")
	want := "fade bajo low fade paso a paso barber tutorial barbería"
	if got != want {
		t.Errorf("buildSearchQuery = %q, want %q", got, want)
	}
}

func TestSearchTermsDropShortWords(t *testing.T) {
	terms := searchTerms("Manejo de la tijera")
	want := []string{"manejo", "tijera"}
	if len(terms) != len(want) {
		t.Fatalf("terms = %v, want %v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], want[i])
		}
	}
}

func TestIsRelevant(t *testing.T) {
	mk := func(title, description, channel string) searchItem {
		var item searchItem
		item.Snippet.Title = title
		item.Snippet.Description = description
		item.Snippet.ChannelTitle = channel
		return item
	}
	terms := searchTerms("Fade bajo paso a paso")

	cases := []struct {
		name string
		item searchItem
		want bool
	}{
		{"trusted channel with lesson term", mk("Low Fade Guide", "", "HD Cutz"), true},
		{"keyword match with lesson term", mk("Fade bajo barber tutorial", "", "Random Uploads"), true},
		{"lesson term but no barber evidence", mk("Fade in After Effects", "video editing", "Editor Hub"), false},
		{"trusted channel without lesson term", mk("Beard oil review", "grooming products", "Beardbrand"), false},
	}
	for _, tc := range cases {
		if got := isRelevant(tc.item, terms); got != tc.want {
			t.Errorf("%s: isRelevant = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func fakeUpstream(t *testing.T, search searchResponse, videos videosResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			t.Error("request missing api key")
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/search"):
			json.NewEncoder(w).Encode(search)
		case strings.HasSuffix(r.URL.Path, "/videos"):
			json.NewEncoder(w).Encode(videos)
		default:
			http.NotFound(w, r)
		}
	}))
}

func searchFixture(videoID, title, description, channel string) searchItem {
	var item searchItem
	item.ID.VideoID = videoID
	item.Snippet.Title = title
	item.Snippet.Description = description
	item.Snippet.ChannelTitle = channel
	return item
}

func videoFixture(id, title, channel, duration string) videoItem {
	var item videoItem
	item.ID = id
	item.Snippet.Title = title
	item.Snippet.ChannelTitle = channel
	item.Snippet.Thumbnails.High.URL = "https://img.example/" + id + "/high.jpg"
	item.ContentDetails.Duration = duration
	return item
}

func TestSearchFiltersAndFormats(t *testing.T) {
	search := searchResponse{}
	search.PageInfo.TotalResults = 2
	search.Items = []searchItem{
		searchFixture("vid1", "Fade bajo tutorial", "barber tutorial", "HD Cutz"),
		searchFixture("vid2", "Unrelated gaming clip", "", "Gamer Zone"),
	}
	videos := videosResponse{Items: []videoItem{
		videoFixture("vid1", "Fade bajo tutorial", "HD Cutz", "PT12M34S"),
	}}

	upstream := fakeUpstream(t, search, videos)
	defer upstream.Close()

	client := NewClient("test-key", upstream.URL, time.Second, zap.NewNop())
	result, err := client.Search(context.Background(), "Fade bajo paso a paso", 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Videos) != 1 {
		t.Fatalf("got %d videos, want 1 after relevance filtering", len(result.Videos))
	}
	got := result.Videos[0]
	if got.ID != "vid1" {
		t.Errorf("ID = %q, want vid1", got.ID)
	}
	if got.Duration != "12:34" {
		t.Errorf("Duration = %q, want 12:34", got.Duration)
	}
	if !got.Relevant {
		t.Error("filtered result must be flagged relevant")
	}
	if result.TotalResults != 2 {
		t.Errorf("TotalResults = %d, want 2", result.TotalResults)
	}
	if !strings.Contains(result.SearchQuery, "barber tutorial barbería") {
		t.Errorf("SearchQuery = %q, missing barbering context", result.SearchQuery)
	}
}

func TestSearchFallsBackToUnfiltered(t *testing.T) {
	search := searchResponse{}
	search.Items = []searchItem{
		searchFixture("vid9", "Random clip", "", "Gamer Zone"),
	}
	videos := videosResponse{Items: []videoItem{
		videoFixture("vid9", "Random clip", "Gamer Zone", "PT3M"),
	}}

	upstream := fakeUpstream(t, search, videos)
	defer upstream.Close()

	client := NewClient("test-key", upstream.URL, time.Second, zap.NewNop())
	result, err := client.Search(context.Background(), "Fade bajo paso a paso", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Videos) != 1 {
		t.Fatalf("got %d videos, want the unfiltered fallback", len(result.Videos))
	}
	if result.Videos[0].Relevant {
		t.Error("fallback result must not be flagged relevant")
	}
}

func TestSearchEmptyUpstream(t *testing.T) {
	upstream := fakeUpstream(t, searchResponse{}, videosResponse{})
	defer upstream.Close()

	client := NewClient("test-key", upstream.URL, time.Second, zap.NewNop())
	result, err := client.Search(context.Background(), "Fade bajo", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Videos) != 0 {
		t.Fatalf("got %d videos, want none", len(result.Videos))
	}
	if result.Message == "" {
		t.Error("empty result must carry a message")
	}
}

func TestSearchUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quotaExceeded"}`, http.StatusForbidden)
	}))
	defer upstream.Close()

	client := NewClient("test-key", upstream.URL, time.Second, zap.NewNop())
	if _, err := client.Search(context.Background(), "Fade bajo", 3); err == nil {
		t.Fatal("expected an error on upstream failure")
	}
}
