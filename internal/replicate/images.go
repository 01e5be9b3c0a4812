package replicate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/genimg/genimg/internal/httpx"
	"github.com/genimg/genimg/internal/provider"
	"golang.org/x/sync/errgroup"
)

// GenerateImages creates a prediction, waits for it to finish, then fetches
// every output URL. The returned slice preserves the provider's output
// order even though URLs are fetched concurrently.
func (c *Client) GenerateImages(ctx context.Context, p provider.ReplicatePayload) ([]provider.Image, error) {
	pred, err := c.createPrediction(ctx, p)
	if err != nil {
		return nil, err
	}

	if !pred.terminal() {
		pred, err = c.pollPrediction(ctx, pred.ID)
		if err != nil {
			return nil, err
		}
	}

	if pred.Status != statusSucceeded {
		msg := fmt.Sprintf("prediction ended with status %s", pred.Status)
		if pred.Error != "" {
			msg += ": " + pred.Error
		}
		return nil, &provider.Error{Provider: "replicate", Code: "prediction_" + pred.Status, Message: msg}
	}

	urls := pred.outputURLs()
	if len(urls) == 0 {
		return nil, &provider.Error{Provider: "replicate", Code: "no_image_data", Message: "prediction produced no output URLs"}
	}

	images := make([]provider.Image, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range urls {
		g.Go(func() error {
			img, err := c.fetchImage(gctx, u)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func (c *Client) createPrediction(ctx context.Context, p provider.ReplicatePayload) (prediction, error) {
	req := createPredictionRequest{Input: p.Input()}

	// A pinned version goes through the generic predictions endpoint; a bare
	// owner/model routes through the model-scoped one.
	url := c.modelPredictionsURL(p.Owner, p.Name)
	if p.Version != "" {
		req.Version = p.Version
		url = c.predictionsURL()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return prediction{}, &provider.Error{Provider: "replicate", Code: "marshal_error", Message: err.Error(), Cause: err}
	}

	h := make(http.Header)
	h.Set("Authorization", "Bearer "+c.cfg.Token)
	// Hold the connection open until the prediction completes when possible.
	h.Set("Prefer", "wait")

	return c.doPrediction(ctx, http.MethodPost, url, body, h)
}

func (c *Client) pollPrediction(ctx context.Context, id string) (prediction, error) {
	pollCtx, cancel := context.WithTimeout(ctx, c.cfg.PollingTimeout)
	defer cancel()

	ticker := time.NewTicker(c.cfg.PollingInterval)
	defer ticker.Stop()

	h := make(http.Header)
	h.Set("Authorization", "Bearer "+c.cfg.Token)
	url := c.predictionsURL() + "/" + id

	for {
		select {
		case <-pollCtx.Done():
			return prediction{}, &provider.Error{Provider: "replicate", Code: "timeout", Message: "timed out waiting for prediction " + id, Cause: pollCtx.Err()}
		case <-ticker.C:
			pred, err := c.doPrediction(pollCtx, http.MethodGet, url, nil, h)
			if err != nil {
				return prediction{}, err
			}
			if pred.terminal() {
				return pred, nil
			}
		}
	}
}

func (c *Client) doPrediction(ctx context.Context, method, url string, body []byte, h http.Header) (prediction, error) {
	resp, err := httpx.DoJSON(ctx, c.cfg.HTTPClient, method, url, body, h)
	if err != nil {
		return prediction{}, &provider.Error{Provider: "replicate", Code: classifyNetworkErr(err), Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		var er errorResponse
		if json.Unmarshal(b, &er) == nil && (er.Detail != "" || er.Title != "") {
			msg := er.Detail
			if msg == "" {
				msg = er.Title
			}
			return prediction{}, &provider.Error{Provider: "replicate", Code: "api_error", Status: resp.StatusCode, Message: msg}
		}
		return prediction{}, &provider.Error{Provider: "replicate", Code: "http_error", Status: resp.StatusCode, Message: strings.TrimSpace(string(b))}
	}

	var pred prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return prediction{}, &provider.Error{Provider: "replicate", Code: "decode_error", Message: err.Error(), Cause: err}
	}
	return pred, nil
}

func (c *Client) fetchImage(ctx context.Context, url string) (provider.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return provider.Image{}, &provider.Error{Provider: "replicate", Code: "request_error", Message: err.Error(), Cause: err}
	}

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return provider.Image{}, &provider.Error{Provider: "replicate", Code: classifyNetworkErr(err), Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return provider.Image{}, &provider.Error{Provider: "replicate", Code: "http_error", Status: resp.StatusCode, Message: fmt.Sprintf("fetching output %s", url)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.Image{}, &provider.Error{Provider: "replicate", Code: "read_error", Message: err.Error(), Cause: err}
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = "image/png"
	}
	return provider.Image{Bytes: data, MediaType: mediaType}, nil
}
