package replicate

import "encoding/json"

const (
	statusStarting   = "starting"
	statusProcessing = "processing"
	statusSucceeded  = "succeeded"
	statusFailed     = "failed"
	statusCanceled   = "canceled"
)

type createPredictionRequest struct {
	Version string         `json:"version,omitempty"`
	Input   map[string]any `json:"input"`
}

type prediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Output json.RawMessage `json:"output"`
}

func (p prediction) terminal() bool {
	switch p.Status {
	case statusSucceeded, statusFailed, statusCanceled:
		return true
	}
	return false
}

// outputURLs normalizes the output field: image models return either a
// single URL string or a list of URL strings depending on the model.
func (p prediction) outputURLs() []string {
	if len(p.Output) == 0 {
		return nil
	}
	var many []string
	if err := json.Unmarshal(p.Output, &many); err == nil {
		return many
	}
	var one string
	if err := json.Unmarshal(p.Output, &one); err == nil && one != "" {
		return []string{one}
	}
	return nil
}

type errorResponse struct {
	Detail string `json:"detail"`
	Title  string `json:"title"`
}
