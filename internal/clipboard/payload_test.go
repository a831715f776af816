package clipboard

import "testing"

func TestURLFromPayloadAbsent(t *testing.T) {
	if _, ok := URLFromPayload(nil); ok {
		t.Error("Expected absent result for nil payload")
	}
}

func TestURLFromPayloadEmptyText(t *testing.T) {
	cases := []string{"", "   ", "\n"}
	for _, text := range cases {
		if _, ok := URLFromPayload(&Payload{Text: text}); ok {
			t.Errorf("Expected absent result for text %q", text)
		}
	}
}

func TestURLFromPayloadInvalidURL(t *testing.T) {
	cases := []string{
		"just some text",
		"image.png",
		"/local/path/image.png",
	}
	for _, text := range cases {
		if _, ok := URLFromPayload(&Payload{Text: text}); ok {
			t.Errorf("Expected absent result for text %q", text)
		}
	}
}

func TestURLFromPayloadValidURL(t *testing.T) {
	// Valid URLs come back unchanged, with no normalization
	url := "https://Example.com/Photos/image.PNG?v=2"
	got, ok := URLFromPayload(&Payload{Text: url})
	if !ok {
		t.Fatal("Expected URL to be extracted")
	}
	if got != url {
		t.Errorf("Expected URL unchanged, got '%s'", got)
	}
}
