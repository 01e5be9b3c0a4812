package genimg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/genimg/genimg/internal/provider"
)

type fakeOpenAI struct {
	calls int
	gen   func(p provider.OpenAIPayload) ([]provider.Image, error)
}

func (f *fakeOpenAI) GenerateImages(_ context.Context, p provider.OpenAIPayload) ([]provider.Image, error) {
	f.calls++
	if f.gen == nil {
		return []provider.Image{{Bytes: []byte("png"), MediaType: "image/png"}}, nil
	}
	return f.gen(p)
}

type fakeReplicate struct {
	calls int
	gen   func(p provider.ReplicatePayload) ([]provider.Image, error)
}

func (f *fakeReplicate) GenerateImages(_ context.Context, p provider.ReplicatePayload) ([]provider.Image, error) {
	f.calls++
	if f.gen == nil {
		return []provider.Image{{Bytes: []byte("png"), MediaType: "image/png"}}, nil
	}
	return f.gen(p)
}

func testClient(o openaiBackend, r replicateBackend) *Client {
	return &Client{
		cfg:       Config{OpenAIKey: "test-key", ReplicateToken: "test-token"},
		openai:    o,
		replicate: r,
	}
}

func TestGenerate_SavesBatchWithIndexSuffixes(t *testing.T) {
	dir := t.TempDir()
	fo := &fakeOpenAI{gen: func(p provider.OpenAIPayload) ([]provider.Image, error) {
		imgs := make([]provider.Image, p.N)
		for i := range imgs {
			imgs[i] = provider.Image{Bytes: []byte{byte(i)}, MediaType: "image/png"}
		}
		return imgs, nil
	}}

	paths, err := testClient(fo, &fakeReplicate{}).Generate(context.Background(), Request{
		Options:   Options{Prompt: "sunset", Count: 3},
		OutputDir: dir,
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"sunset.png", "sunset_1.png", "sunset_2.png"}
	if len(paths) != len(want) {
		t.Fatalf("paths=%v", paths)
	}
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Errorf("path[%d]=%q, want base %q", i, p, want[i])
		}
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != 1 || data[0] != byte(i) {
			t.Errorf("path[%d] holds wrong bytes: %v", i, data)
		}
	}
}

func TestGenerate_ReplicateImagesWrittenInOrder(t *testing.T) {
	dir := t.TempDir()
	fr := &fakeReplicate{gen: func(p provider.ReplicatePayload) ([]provider.Image, error) {
		// Two fetched URL buffers, as if the prediction returned two URLs.
		return []provider.Image{
			{Bytes: []byte("first"), MediaType: "image/png"},
			{Bytes: []byte("second"), MediaType: "image/png"},
		}, nil
	}}

	paths, err := testClient(&fakeOpenAI{}, fr).Generate(context.Background(), Request{
		Options:   Options{Prompt: "two cats", Provider: ProviderReplicate, Count: 2},
		OutputDir: dir,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths=%v", paths)
	}
	if filepath.Base(paths[0]) != "two_cats.png" || filepath.Base(paths[1]) != "two_cats_1.png" {
		t.Errorf("paths=%v", paths)
	}
	first, _ := os.ReadFile(paths[0])
	second, _ := os.ReadFile(paths[1])
	if string(first) != "first" || string(second) != "second" {
		t.Errorf("written order wrong: %q %q", first, second)
	}
}

func TestGenerate_FormatDrivesOpenAIExtensionOnly(t *testing.T) {
	dir := t.TempDir()
	client := testClient(&fakeOpenAI{}, &fakeReplicate{})

	paths, err := client.Generate(context.Background(), Request{
		Options:   Options{Prompt: "fox", Format: "webp"},
		OutputDir: dir,
	})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(paths[0]) != "fox.webp" {
		t.Errorf("openai path=%q", paths[0])
	}

	// Replicate ignores the format option entirely, extension included.
	paths, err = client.Generate(context.Background(), Request{
		Options:   Options{Prompt: "fox", Provider: ProviderReplicate, Format: "webp"},
		OutputDir: dir,
	})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(paths[0]) != "fox.png" {
		t.Errorf("replicate path=%q", paths[0])
	}
}

func TestGenerate_ExplicitFilename(t *testing.T) {
	dir := t.TempDir()
	fo := &fakeOpenAI{gen: func(p provider.OpenAIPayload) ([]provider.Image, error) {
		imgs := make([]provider.Image, p.N)
		for i := range imgs {
			imgs[i] = provider.Image{Bytes: []byte("x"), MediaType: "image/png"}
		}
		return imgs, nil
	}}

	paths, err := testClient(fo, &fakeReplicate{}).Generate(context.Background(), Request{
		Options:   Options{Prompt: "anything", Count: 3},
		OutputDir: dir,
		Filename:  "custom.png",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"custom.png", "custom_1.png", "custom_2.png"}
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Errorf("path[%d]=%q, want base %q", i, p, want[i])
		}
	}
}

func TestGenerate_MissingCredential(t *testing.T) {
	c := &Client{cfg: Config{}, openai: &fakeOpenAI{}, replicate: &fakeReplicate{}}

	_, err := c.Generate(context.Background(), Request{Options: Options{Prompt: "x"}})
	if !IsMissingCredential(err) {
		t.Fatalf("expected MissingCredentialError, got %v", err)
	}
	var mce *MissingCredentialError
	if !errors.As(err, &mce) || mce.EnvVar != EnvOpenAIKey {
		t.Errorf("error should name %s: %v", EnvOpenAIKey, err)
	}
	if c.openai.(*fakeOpenAI).calls != 0 {
		t.Error("no request must be attempted without a credential")
	}
}

func TestGenerate_UnknownProviderBeforeAnyCall(t *testing.T) {
	fo := &fakeOpenAI{}
	fr := &fakeReplicate{}
	_, err := testClient(fo, fr).Generate(context.Background(), Request{
		Options: Options{Prompt: "x", Provider: "dalle-mini"},
	})
	if !IsUnsupportedProvider(err) {
		t.Fatalf("expected UnsupportedProviderError, got %v", err)
	}
	if fo.calls != 0 || fr.calls != 0 {
		t.Error("no backend may be called for an unknown provider")
	}
}

func TestGenerate_ProviderErrorWrapped(t *testing.T) {
	fo := &fakeOpenAI{gen: func(provider.OpenAIPayload) ([]provider.Image, error) {
		return nil, &provider.Error{Provider: "openai", Code: "http_error", Status: 500, Message: "boom"}
	}}

	_, err := testClient(fo, &fakeReplicate{}).Generate(context.Background(), Request{
		Options:   Options{Prompt: "x"},
		OutputDir: t.TempDir(),
	})
	if !IsProviderRequest(err) {
		t.Fatalf("expected ProviderRequestError, got %v", err)
	}
	var pe *provider.Error
	if !errors.As(err, &pe) || pe.Status != 500 {
		t.Errorf("underlying provider error should be reachable: %v", err)
	}
}
