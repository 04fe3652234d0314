package forecast

import (
	"context"
	"fmt"
)

// maxNewsItems caps the number of feed entries served.
const maxNewsItems = 5

// NewsItem is one surf news entry from the configured RSS feed.
type NewsItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
}

// News returns the latest entries from the surf news feed.
func (s *Service) News(ctx context.Context) ([]NewsItem, error) {
	if s.cfg.NewsFeedURL == "" {
		return []NewsItem{}, nil
	}

	feed, err := s.feed.ParseURLWithContext(s.cfg.NewsFeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse news feed: %w", err)
	}

	items := make([]NewsItem, 0, maxNewsItems)
	for _, entry := range feed.Items {
		if len(items) == maxNewsItems {
			break
		}
		items = append(items, NewsItem{
			Title:     entry.Title,
			Link:      entry.Link,
			Published: entry.Published,
			Summary:   truncate(entry.Description, 200),
		})
	}
	return items, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
