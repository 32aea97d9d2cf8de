// ABOUTME: Embed handler for the Huma API
// ABOUTME: Resolves YouTube links to a video ID and player URLs

package handlers

import (
	"context"
	"net/http"

	"pamphlets-api/api/dto/mappers"
	"pamphlets-api/api/dto/responses"
	"pamphlets-api/core/markdown"

	"github.com/danielgtaylor/huma/v2"
)

// EmbedHandler handles embed lookups
type EmbedHandler struct{}

// NewEmbedHandler creates a new embed handler
func NewEmbedHandler() *EmbedHandler {
	return &EmbedHandler{}
}

// RegisterRoutes registers the embed routes
func (h *EmbedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "youtubeEmbed",
		Method:      http.MethodGet,
		Path:        "/embeds/youtube",
		Summary:     "Resolve a YouTube link",
		Description: "Extracts the video ID from watch, youtu.be, embed and shorts links",
		Tags:        []string{"Render"},
	}, h.YouTube)
}

// YouTubeInput defines the query for YouTube
type YouTubeInput struct {
	URL string `query:"url" required:"true" minLength:"1" maxLength:"2048" doc:"Link to resolve"`
}

// YouTubeOutput defines the output for YouTube
type YouTubeOutput struct {
	Body responses.YouTubeResponse
}

// YouTube handles GET /embeds/youtube
func (h *EmbedHandler) YouTube(ctx context.Context, input *YouTubeInput) (*YouTubeOutput, error) {
	id, ok := markdown.YouTubeVideoID(input.URL)
	if !ok {
		return nil, huma.Error404NotFound("not a YouTube video link")
	}
	return &YouTubeOutput{Body: *mappers.ToYouTubeResponse(id)}, nil
}
