package utils

import (
	"eduvest/config"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// PlaylistVideo is one entry fetched from a YouTube playlist
type PlaylistVideo struct {
	Title     string
	YoutubeID string
	Position  int
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet struct {
			Title      string `json:"title"`
			Position   int    `json:"position"`
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

// FetchPlaylistVideos lists a playlist's videos in playlist order via the
// YouTube Data API, following pagination.
// TODO: fetch durations from the /videos endpoint so imports don't leave them at 0
func FetchPlaylistVideos(playlistID string) ([]PlaylistVideo, error) {
	if config.AppConfig.YoutubeApiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY is not configured")
	}

	client := resty.New()
	var videos []PlaylistVideo
	pageToken := ""

	for {
		var result playlistItemsResponse
		resp, err := client.R().
			SetQueryParams(map[string]string{
				"part":       "snippet",
				"playlistId": playlistID,
				"maxResults": "50",
				"pageToken":  pageToken,
				"key":        config.AppConfig.YoutubeApiKey,
			}).
			SetResult(&result).
			Get(config.AppConfig.YoutubeApiUrl + "/playlistItems")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch playlist: %v", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("YouTube API error: %s", resp.Status())
		}

		for _, item := range result.Items {
			videos = append(videos, PlaylistVideo{
				Title:     item.Snippet.Title,
				YoutubeID: item.Snippet.ResourceID.VideoID,
				Position:  item.Snippet.Position,
			})
		}

		if result.NextPageToken == "" {
			break
		}
		pageToken = result.NextPageToken
	}

	return videos, nil
}
