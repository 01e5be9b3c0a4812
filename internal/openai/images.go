package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/genimg/genimg/internal/httpx"
	"github.com/genimg/genimg/internal/provider"
)

type imagesResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		B64JSON       string `json:"b64_json,omitempty"`
		URL           string `json:"url,omitempty"`
		RevisedPrompt string `json:"revised_prompt,omitempty"`
	} `json:"data"`
}

// GenerateImages executes one images request and returns the decoded
// inline payloads in response order.
func (c *Client) GenerateImages(ctx context.Context, p provider.OpenAIPayload) ([]provider.Image, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, &provider.Error{Provider: "openai", Code: "marshal_error", Message: err.Error(), Cause: err}
	}

	h := make(http.Header)
	h.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := httpx.DoJSON(ctx, c.cfg.HTTPClient, http.MethodPost, c.imagesURL(), body, h)
	if err != nil {
		return nil, &provider.Error{Provider: "openai", Code: classifyNetworkErr(err), Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		var er errorResponse
		if json.Unmarshal(b, &er) == nil && er.Error.Message != "" {
			return nil, &provider.Error{
				Provider: "openai",
				Code:     stringifyCode(er.Error.Code, er.Error.Type),
				Status:   resp.StatusCode,
				Message:  er.Error.Message,
			}
		}
		return nil, &provider.Error{
			Provider: "openai",
			Code:     "http_error",
			Status:   resp.StatusCode,
			Message:  strings.TrimSpace(string(b)),
		}
	}

	var out imagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &provider.Error{Provider: "openai", Code: "decode_error", Message: err.Error(), Cause: err}
	}

	mediaType := "image/png"
	if p.OutputFormat != "" {
		mediaType = "image/" + p.OutputFormat
	}

	images := make([]provider.Image, 0, len(out.Data))
	for _, d := range out.Data {
		if d.B64JSON == "" {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(d.B64JSON)
		if err != nil {
			return nil, &provider.Error{Provider: "openai", Code: "decode_error", Message: "invalid base64 image data: " + err.Error(), Cause: err}
		}
		images = append(images, provider.Image{Bytes: raw, MediaType: mediaType})
	}
	if len(images) == 0 {
		return nil, &provider.Error{Provider: "openai", Code: "no_image_data", Message: "response contained no inline image data"}
	}
	return images, nil
}
