package schema

import (
	"encoding/json"
	"testing"
)

func TestValidateInputs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"guidance_scale": 7.5, "scheduler": "K_EULER"}`, false},
		{"empty object", `{}`, false},
		{"reserved prompt", `{"prompt": "override"}`, true},
		{"reserved width", `{"width": 512}`, true},
		{"reserved num_outputs", `{"num_outputs": 4}`, true},
		{"not an object", `["a", "b"]`, true},
		{"scalar", `42`, true},
		{"malformed", `{`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateInputs(json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestValidateInputs_ReturnsDecodedMap(t *testing.T) {
	got, err := ValidateInputs(json.RawMessage(`{"seed": 42, "negative_prompt": "blurry"}`))
	if err != nil {
		t.Fatal(err)
	}
	if got["seed"] != float64(42) || got["negative_prompt"] != "blurry" {
		t.Errorf("got %v", got)
	}
}
