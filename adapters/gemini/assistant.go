package gemini

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/zonaelectrica/zeia-server/domain/entities"
	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

// Chat answers a message with the web-search tool granted
func (c *Client) Chat(ctx context.Context, message string) (repositories.Reply, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	contents := []*genai.Content{genai.NewContentFromText(message, genai.RoleUser)}
	response, err := c.genai.Models.GenerateContent(ctx, chatModel, contents, config)
	if err != nil {
		c.logger.Error("Chat call failed", zap.Error(err))
		return repositories.Reply{}, fmt.Errorf("chat call failed: %w", err)
	}

	return replyFromResponse(response), nil
}

// Reason answers with an extended thinking budget instead of the search tool
func (c *Client) Reason(ctx context.Context, prompt string) (repositories.Reply, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(thinkingBudget),
		},
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	response, err := c.genai.Models.GenerateContent(ctx, reasoningModel, contents, config)
	if err != nil {
		c.logger.Error("Reasoning call failed", zap.Error(err))
		return repositories.Reply{}, fmt.Errorf("reasoning call failed: %w", err)
	}

	return replyFromResponse(response), nil
}

// GenerateImage renders a technical visualization for the prompt
func (c *Client) GenerateImage(ctx context.Context, prompt string) (repositories.GeneratedImage, error) {
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: imageAspectRatio,
			ImageSize:   imageSize,
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(imageTemplate, prompt), genai.RoleUser),
	}
	response, err := c.genai.Models.GenerateContent(ctx, modelImage, contents, config)
	if err != nil {
		c.logger.Error("Image generation failed", zap.Error(err))
		return repositories.GeneratedImage{}, fmt.Errorf("image generation failed: %w", err)
	}

	var result repositories.GeneratedImage
	for _, part := range responseParts(response) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			result.PNG = part.InlineData.Data
		} else if part.Text != "" {
			result.Text += part.Text
		}
	}

	return result, nil
}

// AnalyzeImage produces a diagnosis report for an inline equipment image
func (c *Client) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(analysisPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	response, err := c.genai.Models.GenerateContent(ctx, visionModel, contents, config)
	if err != nil {
		c.logger.Error("Image analysis failed", zap.Error(err))
		return "", fmt.Errorf("image analysis failed: %w", err)
	}

	return responseText(response), nil
}

// FindPlaces runs a maps-grounded search biased to the user location.
// Only maps-type grounding chunks become places; web results are dropped.
func (c *Client) FindPlaces(ctx context.Context, query string, location entities.LatLng) ([]entities.Place, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleMaps: &genai.GoogleMaps{}},
		},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(location.Latitude),
					Longitude: genai.Ptr(location.Longitude),
				},
			},
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromText(query+" cerca de mi ubicación", genai.RoleUser),
	}
	response, err := c.genai.Models.GenerateContent(ctx, modelMaps, contents, config)
	if err != nil {
		c.logger.Error("Distributor search failed", zap.Error(err))
		return nil, fmt.Errorf("distributor search failed: %w", err)
	}

	var places []entities.Place
	for _, chunk := range groundingChunks(response) {
		if chunk.Maps == nil {
			continue
		}
		place := entities.Place{
			Title:    chunk.Maps.Title,
			URI:      chunk.Maps.URI,
			Snippets: []string{},
		}
		if chunk.Maps.PlaceAnswerSources != nil {
			for _, snippet := range chunk.Maps.PlaceAnswerSources.ReviewSnippets {
				if snippet != nil && snippet.Title != "" {
					place.Snippets = append(place.Snippets, snippet.Title)
				}
			}
		}
		places = append(places, place)
	}

	return places, nil
}

// Synthesize converts text to raw PCM speech (24 kHz, mono, 16-bit)
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: ttsVoice},
			},
		},
	}

	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
	response, err := c.genai.Models.GenerateContent(ctx, modelTTS, contents, config)
	if err != nil {
		c.logger.Error("Speech synthesis failed", zap.Error(err))
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	for _, part := range responseParts(response) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}

	return nil, fmt.Errorf("speech synthesis returned no audio")
}

// replyFromResponse extracts text and grounding citations
func replyFromResponse(response *genai.GenerateContentResponse) repositories.Reply {
	reply := repositories.Reply{Text: responseText(response)}

	for _, chunk := range groundingChunks(response) {
		if chunk.Web == nil {
			continue
		}
		source := entities.GroundingSource{Title: chunk.Web.Title, URI: chunk.Web.URI}
		if source.Title == "" {
			source.Title = "Fuente Técnica"
		}
		if source.URI == "" {
			source.URI = "#"
		}
		reply.Sources = append(reply.Sources, source)
	}

	return reply
}

func responseParts(response *genai.GenerateContentResponse) []*genai.Part {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return nil
	}
	return response.Candidates[0].Content.Parts
}

func responseText(response *genai.GenerateContentResponse) string {
	var text string
	for _, part := range responseParts(response) {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}

func groundingChunks(response *genai.GenerateContentResponse) []*genai.GroundingChunk {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	return response.Candidates[0].GroundingMetadata.GroundingChunks
}
